// Package hash provides the hash functions used by field data.
//
//   - CRC32C: integrity checksums of compressed column blocks
//   - Value64: xxHash64 of individual values, computed on demand for
//     aggregations that bucket by hash
//
// Neither hash is ever cached next to the values.
package hash
