package fielddata

// BinaryDocValues is FieldData over a single-valued byte-string column.
//
// It is intended for near-unique, identifier-like fields. It owns nothing:
// the column and presence bitmap belong to the segment reader, so Close is
// a no-op and accessors stay valid exactly as long as the reader is open.
type BinaryDocValues struct {
	src *Source
}

var _ FieldData = (*BinaryDocValues)(nil)

// NewBinaryDocValues returns field data over an opened source.
func NewBinaryDocValues(src *Source) *BinaryDocValues {
	return &BinaryDocValues{src: src}
}

// Kind implements FieldData.
func (d *BinaryDocValues) Kind() Kind { return KindBinaryDocValues }

// Source returns the underlying source.
func (d *BinaryDocValues) Source() *Source { return d.src }

// IsMultiValued implements FieldData. Always false.
func (d *BinaryDocValues) IsMultiValued() bool { return false }

// IsValuesOrdered implements FieldData. Always true; a single value is
// trivially ordered.
func (d *BinaryDocValues) IsValuesOrdered() bool { return true }

// NumDocs implements FieldData.
func (d *BinaryDocValues) NumDocs() int { return d.src.numDocs }

// NumberOfUniqueValues implements FieldData.
//
// It returns the document count: never below the true number of distinct
// values, and never computed exactly.
func (d *BinaryDocValues) NumberOfUniqueValues() int64 { return int64(d.src.numDocs) }

// MemorySizeInBytes implements FieldData. The column store does not expose
// its memory usage, so this is always UnknownMemorySize.
func (d *BinaryDocValues) MemorySizeInBytes() int64 { return UnknownMemorySize }

// BytesValues implements FieldData.
func (d *BinaryDocValues) BytesValues() *BytesValues {
	return newBytesValues(d.src)
}

// HashedBytesValues implements FieldData.
//
// The output is identical to BytesValues. Hashes are computed on demand by
// BytesValues.HashedValues and never cached: for identifier-like fields a
// cached hash per document costs more memory than it saves.
func (d *BinaryDocValues) HashedBytesValues() *BytesValues {
	return d.BytesValues()
}

// ScriptValues implements FieldData.
func (d *BinaryDocValues) ScriptValues() *ScriptStrings {
	return NewScriptStrings(d.BytesValues())
}

// Close implements FieldData. It is a no-op; the segment reader owns all
// resources.
func (d *BinaryDocValues) Close() error { return nil }

func (d *BinaryDocValues) fieldData() {}
