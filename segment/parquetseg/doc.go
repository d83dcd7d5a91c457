// Package parquetseg reads segments from Parquet files.
//
// Every row of the file is a document, and every byte-array leaf column is
// a field; nested leaves are addressed by dotted paths ("a.b"). The
// repetition of the column's path maps onto presence:
//
//	column missing from the schema   no column      (AllAbsent)
//	required at every level          no bitmap      (AllPresent)
//	optional leaf or ancestor        non-null rows  (Explicit)
//
// Columns with a repeated leaf or ancestor and non byte-array types are
// rejected with ErrUnsupportedColumn.
//
// Open reads any io.ReaderAt; OpenBlob reads a file from a
// blobstore.BlobStore (local, S3, MinIO) and owns it until Close.
package parquetseg
