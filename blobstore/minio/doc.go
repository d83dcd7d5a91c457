// Package minio provides a blobstore.BlobStore on the MinIO client.
//
// It works with MinIO and other S3-compatible systems such as Ceph,
// Garage and SeaweedFS, and needs no AWS SDK.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "segments/")
//	seg, err := parquetseg.OpenBlob(ctx, store, "0001.parquet")
package minio
