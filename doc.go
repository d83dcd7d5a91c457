// Package fielddata exposes per-segment binary doc values to scripting and
// aggregations.
//
// A segment stores at most one byte string per document for a field, and
// may or may not keep a bitmap of which documents have one. This package
// turns that into a uniform answer per document: exactly one value, or
// none.
//
// # Quick Start
//
//	dv, err := fielddata.Load(reader, "_uid")
//	if err != nil {
//	    return err // *LoadError; errors.Is(err, fielddata.ErrStorageOpen)
//	}
//	values := dv.BytesValues()
//
//	var buf []byte
//	for doc := uint32(0); doc < uint32(dv.NumDocs()); doc++ {
//	    if !values.HasValue(doc) {
//	        continue
//	    }
//	    buf = values.ValueInto(doc, buf)
//	    // use buf
//	}
//
// # Presence
//
// Presence is resolved once per (segment, field) into one of three
// policies (see package presence):
//
//	no column                AllAbsent   every document has no value
//	column, no bitmap        AllPresent  every document has a value
//	column and bitmap        Explicit    the bitmap decides
//
// AllPresent holds even for documents whose stored value is empty.
//
// # Value Access
//
// BytesValues offers two ways to read a value:
//
//   - HasValue then ValueInto: the hot path. ValueInto copies into a
//     caller-owned scratch buffer and does not check presence.
//   - Values: a lazy sequence of zero or one value, recomputed from the
//     column on every pass.
//
// # Sessions
//
// Cache opens each (segment, field) once and shares the immutable Source
// across goroutines; BytesValues and ScriptStrings are cheap per-goroutine
// views over it.
//
// # Ownership
//
// Nothing here owns storage. Close is a no-op, and accessors must not be
// used after the segment reader is closed.
package fielddata
