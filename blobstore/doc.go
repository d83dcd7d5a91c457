// Package blobstore provides storage for immutable segment files.
//
// A BlobStore holds whole files (for example Parquet segments) by name.
// Segment readers open a Blob and read it at random offsets; Blob reads
// take a context so that remote reads can be cancelled.
//
// # Built-in Implementations
//
//   - LocalStore: local file system, blobs are memory-mapped
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible stores
//
// # Wrappers
//
//   - CachingStore: block-level LRU cache in front of a remote store
//   - ThrottledStore: read throughput limit
//
// Wrappers compose:
//
//	store := blobstore.NewThrottledStore(
//	    blobstore.NewCachingStore(s3Store, 4096, 0),
//	    64<<20,
//	)
//
// NewReaderAt adapts a Blob to io.ReaderAt for libraries that expect one.
package blobstore
