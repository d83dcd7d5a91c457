package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// MemoryStore holds segment files in process memory. It backs tests and
// examples, and segments that are built and queried in the same process.
type MemoryStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

var _ BlobStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string][]byte)}
}

// Open returns a Mappable blob over the stored image. Stored images are
// never modified, so open blobs survive a later Put or Delete of the name.
func (m *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	m.mu.RLock()
	data, ok := m.files[name]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return memoryBlob(data), nil
}

// Put stores a private copy of data under name.
func (m *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	image := bytes.Clone(data)
	if image == nil {
		image = []byte{}
	}

	m.mu.Lock()
	m.files[name] = image
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	delete(m.files, name)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	m.mu.RUnlock()

	slices.Sort(names)
	return names, nil
}

// memoryBlob is a stored file image.
type memoryBlob []byte

func (b memoryBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	return readBytes(b, p, off)
}

func (b memoryBlob) Close() error           { return nil }
func (b memoryBlob) Size() int64            { return int64(len(b)) }
func (b memoryBlob) Bytes() ([]byte, error) { return b, nil }
