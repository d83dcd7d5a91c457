package presence

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// RoaringBits is a presence bitmap backed by a 32-bit Roaring bitmap.
// It suits sparse fields. The wrapped bitmap must not be modified after
// it is handed to an indicator.
type RoaringBits struct {
	rb *roaring.Bitmap
}

// NewRoaringBits wraps rb. A nil rb is treated as empty.
func NewRoaringBits(rb *roaring.Bitmap) *RoaringBits {
	if rb == nil {
		rb = roaring.New()
	}
	return &RoaringBits{rb: rb}
}

// RoaringOf builds a bitmap containing docs.
func RoaringOf(docs ...uint32) *RoaringBits {
	return &RoaringBits{rb: roaring.BitmapOf(docs...)}
}

// Test reports whether doc is present.
func (b *RoaringBits) Test(doc uint32) bool {
	return b.rb.Contains(doc)
}

// Cardinality returns the number of present documents.
func (b *RoaringBits) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Iterator returns the present documents in ascending order.
func (b *RoaringBits) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// GetSizeInBytes returns the in-memory size of the bitmap.
func (b *RoaringBits) GetSizeInBytes() uint64 {
	return b.rb.GetSizeInBytes()
}
