package segment

// SegmentID uniquely identifies an immutable segment.
type SegmentID uint64

// Reader is an opened, read-only segment.
//
// The reader owns every resource behind the columns and bitmaps it hands
// out. Values obtained from a Reader must not be used after it is closed;
// that boundary is not guarded here.
type Reader interface {
	// ID returns the segment identifier.
	ID() SegmentID

	// NumDocs returns the number of documents in the segment,
	// including documents without a value for any given field.
	NumDocs() int

	// OpenColumn opens the per-document byte-string column of a field.
	// ok=false means the field has no column in this segment; that is
	// not an error.
	OpenColumn(field string) (c Column, ok bool, err error)

	// OpenPresence opens the presence bitmap of a field.
	// ok=false means the store keeps no presence index for the field.
	OpenPresence(field string) (b Bitmap, ok bool, err error)
}

// Column maps a document id to its raw byte-string value.
type Column interface {
	// AppendValue appends the value of doc to dst and returns the
	// extended slice. Documents without a value append nothing.
	// doc must be in [0, NumDocs); this is not checked.
	AppendValue(dst []byte, doc uint32) []byte
}

// Bitmap is a segment-local set of document ids.
type Bitmap interface {
	// Test reports whether doc is in the set.
	Test(doc uint32) bool
}

// CardinalityBitmap is a Bitmap that can report its size cheaply.
type CardinalityBitmap interface {
	Bitmap

	// Cardinality returns the number of documents in the set.
	Cardinality() uint64
}

// EmptyColumn is a Column without any values.
var EmptyColumn Column = emptyColumn{}

type emptyColumn struct{}

func (emptyColumn) AppendValue(dst []byte, _ uint32) []byte { return dst }
