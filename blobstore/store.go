package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

var (
	// ErrNotFound is returned when a blob does not exist.
	//
	// Implementations return an error that satisfies errors.Is(err, ErrNotFound).
	ErrNotFound = os.ErrNotExist

	// ErrInvalidOffset is returned for reads at a negative offset.
	ErrInvalidOffset = errors.New("blobstore: negative offset")
)

// BlobStore stores immutable segment files.
// Implementations must be safe for concurrent use.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)

	// Put writes a blob atomically, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs starting with prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a stored segment file.
type Blob interface {
	io.Closer

	// ReadAt reads len(p) bytes at off with io.ReaderAt semantics.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)

	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is implemented by blobs whose content is already in memory.
type Mappable interface {
	// Bytes returns the whole content without copying.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// NewReaderAt returns an io.ReaderAt that reads b under ctx.
func NewReaderAt(ctx context.Context, b Blob) io.ReaderAt {
	return &readerAt{ctx: ctx, blob: b}
}

type readerAt struct {
	ctx  context.Context
	blob Blob
}

func (r *readerAt) ReadAt(p []byte, off int64) (int, error) {
	return r.blob.ReadAt(r.ctx, p, off)
}

// readBytes serves Blob.ReadAt from an in-memory file image.
func readBytes(data, p []byte, off int64) (int, error) {
	switch {
	case off < 0:
		return 0, ErrInvalidOffset
	case off >= int64(len(data)):
		return 0, io.EOF
	}
	if n := copy(p, data[off:]); n < len(p) {
		return n, io.EOF
	}
	return len(p), nil
}
