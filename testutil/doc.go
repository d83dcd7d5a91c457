// Package testutil provides testing utilities for field data.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Corpora
//
//	rng := testutil.NewRNG(seed)
//	c := rng.Corpus(10_000, 0.3, 4, 16, 0) // 30% dense, unique-ish values
//	for _, doc := range c.PresentDocs() {
//	    _ = c.Values[doc]
//	}
package testutil
