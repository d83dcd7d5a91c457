// Package segment defines the storage-side interfaces field data is read from.
//
// A segment is an immutable partition of the index holding a fixed set of
// documents, addressed by dense ids in [0, NumDocs). For every field a
// segment may carry:
//
//   - a Column mapping each document id to one raw byte string, and
//   - a presence Bitmap recording which documents actually have a value.
//
// Stores omit the presence bitmap for dense fields; readers of this package
// treat a column without a bitmap as "every document has a value".
//
// # Reader Implementations
//
//   - memseg: in-memory segments (raw or block-compressed columns)
//   - parquetseg: byte-array columns of a Parquet file
//   - faulty: wraps another Reader and injects failures (tests)
package segment
