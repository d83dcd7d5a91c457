package column

// Raw is an immutable byte-string column laid out as one contiguous data
// buffer plus an offsets array: value i is data[offsets[i]:offsets[i+1]].
//
// Documents without a value are stored as empty strings; presence is
// tracked separately.
type Raw struct {
	offsets []uint64
	data    []byte
}

// NewRaw builds a column holding values, one per document.
// The values are copied.
func NewRaw(values [][]byte) *Raw {
	b := NewRawBuilder(len(values))
	for _, v := range values {
		b.Append(v)
	}
	return b.Build()
}

// Len returns the number of documents in the column.
func (r *Raw) Len() int {
	return len(r.offsets) - 1
}

// At returns a read-only view of the value of doc.
// The returned slice aliases the column and must not be modified.
func (r *Raw) At(doc uint32) []byte {
	return r.data[r.offsets[doc]:r.offsets[doc+1]:r.offsets[doc+1]]
}

// AppendValue implements segment.Column.
func (r *Raw) AppendValue(dst []byte, doc uint32) []byte {
	return append(dst, r.data[r.offsets[doc]:r.offsets[doc+1]]...)
}

// Size returns the number of bytes held by the column.
func (r *Raw) Size() int {
	return len(r.data) + 8*len(r.offsets)
}

// RawBuilder appends values in document order.
// A RawBuilder is not safe for concurrent use.
type RawBuilder struct {
	offsets []uint64
	data    []byte
}

// NewRawBuilder creates a builder with room for sizeHint documents.
func NewRawBuilder(sizeHint int) *RawBuilder {
	offsets := make([]uint64, 1, sizeHint+1)
	return &RawBuilder{offsets: offsets}
}

// Append adds the value of the next document.
func (b *RawBuilder) Append(v []byte) {
	b.data = append(b.data, v...)
	b.offsets = append(b.offsets, uint64(len(b.data)))
}

// AppendEmpty adds a document without a value.
func (b *RawBuilder) AppendEmpty() {
	b.offsets = append(b.offsets, uint64(len(b.data)))
}

// Len returns the number of documents appended so far.
func (b *RawBuilder) Len() int {
	return len(b.offsets) - 1
}

// Build returns the immutable column. The builder must not be used afterwards.
func (b *RawBuilder) Build() *Raw {
	r := &Raw{offsets: b.offsets, data: b.data}
	b.offsets, b.data = nil, nil
	return r
}
