// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("segments/"),
//	    s3.WithRegion("us-east-1"),
//	)
//	if err != nil { ... }
//
//	seg, err := parquetseg.OpenBlob(ctx, store, "0001.parquet")
//
// Reads are ranged GETs, so opening a Parquet segment fetches the footer
// and the requested column chunks only. Wrap the store in a
// blobstore.CachingStore when the same segments are opened repeatedly.
//
// Small blobs are written with one PutObject carrying a CRC32C checksum;
// larger ones use multipart uploads.
package s3
