// Package memseg provides in-memory segments.
//
// Segments are assembled with a Builder, one value per (field, document):
//
//	r, err := memseg.NewBuilder(1, 3).
//	    Add("_id", 0, []byte("alpha")).
//	    Add("_id", 2, []byte("gamma")).
//	    Build()
//
// By default each field gets a presence bitmap of the documents that were
// added (Roaring for sparse fields, a dense bitset otherwise). Dense stores
// a field without a bitmap, and Compress stores its column as compressed
// blocks.
package memseg
