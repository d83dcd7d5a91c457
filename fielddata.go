package fielddata

import "fmt"

// Kind enumerates the field-data variants defined by this package.
type Kind uint8

const (
	// KindBinaryDocValues is single-valued field data read from a
	// per-document byte-string column.
	KindBinaryDocValues Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case KindBinaryDocValues:
		return "binary_doc_values"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// UnknownMemorySize is returned by MemorySizeInBytes when the underlying
// store does not expose memory accounting.
const UnknownMemorySize int64 = -1

// FieldData is per-segment, per-field value access for scripting and
// aggregations.
//
// The set of implementations is closed; switch on Kind rather than on the
// dynamic type.
type FieldData interface {
	// Kind returns the variant.
	Kind() Kind

	// IsMultiValued reports whether a document can have more than one value.
	IsMultiValued() bool

	// IsValuesOrdered reports whether a document's values are returned in order.
	IsValuesOrdered() bool

	// NumDocs returns the number of documents in the segment, with or
	// without a value.
	NumDocs() int

	// NumberOfUniqueValues returns an upper bound of the distinct values.
	NumberOfUniqueValues() int64

	// MemorySizeInBytes returns the memory held by the field data, or
	// UnknownMemorySize.
	MemorySizeInBytes() int64

	// BytesValues returns a new per-document accessor.
	BytesValues() *BytesValues

	// HashedBytesValues returns a per-document accessor for hash-based
	// consumers.
	HashedBytesValues() *BytesValues

	// ScriptValues returns a new view for the scripting layer.
	ScriptValues() *ScriptStrings

	// Close releases resources owned by the field data, if any.
	Close() error

	fieldData()
}
