package hash

import (
	"github.com/cespare/xxhash/v2"
)

// Value64 returns the 64-bit xxHash of a value.
// The result is stable across processes and platforms.
func Value64(v []byte) uint64 {
	return xxhash.Sum64(v)
}
