package presence

import (
	"errors"

	"github.com/hupe1980/fielddata/segment"
)

// ErrInconsistentStore is returned when a presence bitmap exists for a
// field that has no column. It points at corruption upstream.
var ErrInconsistentStore = errors.New("presence bitmap without column")

// Indicator answers "does document d have a value" for one field of one
// segment. Exactly three implementations exist: AllAbsent, AllPresent and
// Explicit.
//
// Indicators are immutable and safe for concurrent use.
type Indicator interface {
	// Has reports whether doc has a value. doc must be in [0, NumDocs).
	Has(doc uint32) bool

	// Policy returns the variant.
	Policy() Policy

	// NumDocs returns the number of documents in the segment.
	NumDocs() int

	// Cardinality returns the number of documents with a value.
	Cardinality() int

	sealed()
}

// AllAbsent reports no value for every document.
type AllAbsent struct {
	numDocs int
}

// NewAllAbsent returns the indicator for a field missing from a segment.
func NewAllAbsent(numDocs int) AllAbsent { return AllAbsent{numDocs: numDocs} }

func (AllAbsent) Has(uint32) bool  { return false }
func (AllAbsent) Policy() Policy   { return PolicyAllAbsent }
func (a AllAbsent) NumDocs() int   { return a.numDocs }
func (AllAbsent) Cardinality() int { return 0 }
func (AllAbsent) sealed()          {}

// AllPresent reports a value for every document, including documents
// whose stored byte string is empty.
type AllPresent struct {
	numDocs int
}

// NewAllPresent returns the indicator for a dense field without a presence index.
func NewAllPresent(numDocs int) AllPresent { return AllPresent{numDocs: numDocs} }

func (AllPresent) Has(uint32) bool    { return true }
func (AllPresent) Policy() Policy     { return PolicyAllPresent }
func (a AllPresent) NumDocs() int     { return a.numDocs }
func (a AllPresent) Cardinality() int { return a.numDocs }
func (AllPresent) sealed()            {}

// Explicit reports presence from a bitmap.
type Explicit struct {
	bits    segment.Bitmap
	numDocs int
}

// NewExplicit returns an indicator backed by bits.
func NewExplicit(numDocs int, bits segment.Bitmap) Explicit {
	return Explicit{bits: bits, numDocs: numDocs}
}

func (e Explicit) Has(doc uint32) bool { return e.bits.Test(doc) }
func (Explicit) Policy() Policy        { return PolicyExplicit }
func (e Explicit) NumDocs() int        { return e.numDocs }
func (Explicit) sealed()               {}

// Bits returns the backing bitmap.
func (e Explicit) Bits() segment.Bitmap { return e.bits }

// Cardinality counts documents whose bit is set. Bitmaps that know their
// cardinality answer directly; others are scanned.
func (e Explicit) Cardinality() int {
	if cb, ok := e.bits.(segment.CardinalityBitmap); ok {
		return int(cb.Cardinality())
	}
	n := 0
	for doc := 0; doc < e.numDocs; doc++ {
		if e.bits.Test(uint32(doc)) {
			n++
		}
	}
	return n
}

// Resolve picks the indicator for a field from what the store provides:
//
//	column  bitmap  result
//	no      no      AllAbsent
//	yes     no      AllPresent
//	yes     yes     Explicit(bitmap)
//	no      yes     ErrInconsistentStore
func Resolve(numDocs int, hasColumn bool, bits segment.Bitmap, hasBits bool) (Indicator, error) {
	switch {
	case !hasColumn && hasBits:
		return nil, ErrInconsistentStore
	case !hasColumn:
		return NewAllAbsent(numDocs), nil
	case !hasBits:
		return NewAllPresent(numDocs), nil
	default:
		return NewExplicit(numDocs, bits), nil
	}
}
