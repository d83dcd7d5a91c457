// Package column provides immutable byte-string columns for segments.
//
//   - Raw: contiguous data plus offsets; zero-copy At views.
//   - Compressed: blocks of consecutive documents compressed with LZ4,
//     ZSTD or Snappy, each guarded by a CRC32C checksum.
//
// Both implement segment.Column. Neither tracks presence: documents
// without a value hold an empty string and presence comes from the
// segment's presence bitmap.
package column
