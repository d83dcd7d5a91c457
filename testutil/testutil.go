package testutil

import (
	"math/rand"
	"sync"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns a random alphanumeric byte string with a length in
// [minLen, maxLen].
func (r *RNG) Bytes(minLen, maxLen int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bytes(minLen, maxLen)
}

func (r *RNG) bytes(minLen, maxLen int) []byte {
	n := minLen
	if maxLen > minLen {
		n += r.rand.Intn(maxLen - minLen + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return b
}

// Corpus is a generated single-valued field: Values[d] is meaningful only
// if Present[d].
type Corpus struct {
	Values  [][]byte
	Present []bool
}

// NumDocs returns the number of documents.
func (c Corpus) NumDocs() int {
	return len(c.Values)
}

// PresentDocs returns the ids of documents with a value, ascending.
func (c Corpus) PresentDocs() []uint32 {
	var docs []uint32
	for d, ok := range c.Present {
		if ok {
			docs = append(docs, uint32(d))
		}
	}
	return docs
}

// Distinct returns the number of distinct present values.
func (c Corpus) Distinct() int {
	seen := make(map[string]struct{})
	for d, ok := range c.Present {
		if ok {
			seen[string(c.Values[d])] = struct{}{}
		}
	}
	return len(seen)
}

// Corpus generates numDocs documents. Each document has a value with
// probability density; values have a length in [minLen, maxLen] and are
// drawn from a pool of poolSize strings (poolSize <= 0 means no pool, so
// values are mostly unique).
func (r *RNG) Corpus(numDocs int, density float64, minLen, maxLen, poolSize int) Corpus {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pool [][]byte
	for i := 0; i < poolSize; i++ {
		pool = append(pool, r.bytes(minLen, maxLen))
	}

	c := Corpus{
		Values:  make([][]byte, numDocs),
		Present: make([]bool, numDocs),
	}
	for d := 0; d < numDocs; d++ {
		if r.rand.Float64() >= density {
			continue
		}
		c.Present[d] = true
		if len(pool) > 0 {
			c.Values[d] = pool[r.rand.Intn(len(pool))]
		} else {
			c.Values[d] = r.bytes(minLen, maxLen)
		}
	}
	return c
}
