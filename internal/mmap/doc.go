// Package mmap provides read-only memory-mapped file access.
//
// Local segment files are mapped instead of read so that column loads and
// Parquet footer lookups go straight to the page cache:
//
//	m, err := mmap.Open("segment-0001.parquet")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessRandom)
//	data := m.Bytes()
//
// Unix uses mmap(2) and madvise(2); Windows uses
// CreateFileMapping/MapViewOfFile and ignores advice.
//
// A Mapping is safe for concurrent reads. Close is idempotent, but callers
// must not touch slices returned by Bytes after it.
package mmap
