package fielddata

import (
	"iter"

	"github.com/hupe1980/fielddata/internal/hash"
)

// BytesValues reads the values of one field, document by document.
//
// BytesValues keeps a spare buffer for Values and HashedValues and is
// therefore not safe for concurrent use; it is cheap to create, so use one
// per goroutine. Every call reads from the column again; nothing is
// cached across calls.
type BytesValues struct {
	src   *Source
	spare []byte
}

func newBytesValues(src *Source) *BytesValues {
	return &BytesValues{src: src}
}

// IsMultiValued always returns false.
func (v *BytesValues) IsMultiValued() bool { return false }

// HasValue reports whether doc has a value.
// doc must be in [0, NumDocs); out-of-range ids are not checked.
func (v *BytesValues) HasValue(doc uint32) bool {
	return v.src.presence.Has(doc)
}

// ValueInto writes the value of doc into buf, reusing its capacity, and
// returns the result.
//
// If HasValue(doc) is false the result is unspecified; check presence
// first. The two steps are kept apart so that callers who already know
// presence pay no extra branch.
func (v *BytesValues) ValueInto(doc uint32, buf []byte) []byte {
	return v.src.column.AppendValue(buf[:0], doc)
}

// Values returns the values of doc: nothing if the document has no value,
// otherwise exactly one element equal to ValueInto(doc, ...).
//
// The sequence can be ranged over repeatedly; each pass reads the column
// again. A yielded slice is only valid until the next value is produced by
// this BytesValues.
func (v *BytesValues) Values(doc uint32) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if !v.src.presence.Has(doc) {
			return
		}
		v.spare = v.src.column.AppendValue(v.spare[:0], doc)
		yield(v.spare)
	}
}

// HashedValues is Values with the hash of each value, computed on demand.
func (v *BytesValues) HashedValues(doc uint32) iter.Seq2[[]byte, uint64] {
	return func(yield func([]byte, uint64) bool) {
		for val := range v.Values(doc) {
			if !yield(val, hash.Value64(val)) {
				return
			}
		}
	}
}

// HashValue returns the hash HashedValues reports for a value.
func HashValue(v []byte) uint64 {
	return hash.Value64(v)
}
