package bitset

import (
	"math/bits"
)

// Dense is an immutable, word-packed bitset over [0, Len).
//
// Dense is safe for concurrent reads. It is built with a Builder and never
// modified afterwards.
type Dense struct {
	words []uint64
	size  uint32
	count int
}

// Test returns true if the bit at the given index is set.
// Indexes at or beyond Len report false.
func (d *Dense) Test(i uint32) bool {
	if i >= d.size {
		return false
	}
	return d.words[i>>6]&(uint64(1)<<(i&63)) != 0
}

// Len returns the size of the bitset in bits.
func (d *Dense) Len() uint32 {
	return d.size
}

// Cardinality returns the number of set bits.
func (d *Dense) Cardinality() uint64 {
	return uint64(d.count)
}

// NextSetBit returns the index of the next set bit starting from i (inclusive).
// Returns -1 if no bit is set at or after i.
func (d *Dense) NextSetBit(i uint32) int64 {
	if i >= d.size {
		return -1
	}

	wordIdx := int(i >> 6)
	// Mask out bits before i
	val := d.words[wordIdx] &^ ((uint64(1) << (i & 63)) - 1)
	for {
		if val != 0 {
			return int64(wordIdx)*64 + int64(bits.TrailingZeros64(val))
		}
		wordIdx++
		if wordIdx >= len(d.words) {
			return -1
		}
		val = d.words[wordIdx]
	}
}

// ForEach calls fn for each set bit in ascending order.
// Stops early if fn returns false.
func (d *Dense) ForEach(fn func(i uint32) bool) {
	for w, val := range d.words {
		for val != 0 {
			tz := bits.TrailingZeros64(val)
			if !fn(uint32(w*64 + tz)) {
				return
			}
			val &= val - 1
		}
	}
}

// Builder accumulates bits for a Dense bitset.
// A Builder is not safe for concurrent use.
type Builder struct {
	words []uint64
	size  uint32
}

// NewBuilder creates a Builder for a bitset of size bits.
func NewBuilder(size uint32) *Builder {
	return &Builder{
		words: make([]uint64, (uint64(size)+63)/64),
		size:  size,
	}
}

// Set marks a bit as set. Indexes at or beyond the size are ignored.
func (b *Builder) Set(i uint32) {
	if i >= b.size {
		return
	}
	b.words[i>>6] |= uint64(1) << (i & 63)
}

// Build returns the immutable bitset. The Builder must not be used afterwards.
func (b *Builder) Build() *Dense {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}
	d := &Dense{words: b.words, size: b.size, count: count}
	b.words = nil
	return d
}
