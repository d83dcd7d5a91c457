package mmap

import (
	"io"
	"math"
	"os"
	"sync/atomic"
)

// Mapping is a read-only view of a whole file.
type Mapping struct {
	data   []byte
	closed atomic.Bool
	unmap  func([]byte) error
}

// Open maps the file at path read-only.
// Empty files yield an empty mapping without a system mapping behind it.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return mapFile(f)
}

func mapFile(f *os.File) (*Mapping, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	switch size := fi.Size(); {
	case size == 0:
		return &Mapping{}, nil
	case size < 0 || size > math.MaxInt:
		return nil, ErrInvalidSize
	default:
		data, unmap, err := osMap(f, int(size))
		if err != nil {
			return nil, err
		}
		return &Mapping{data: data, unmap: unmap}, nil
	}
}

// Close releases the mapping. Calls after the first return nil.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) || m.unmap == nil || m.data == nil {
		return nil
	}
	return m.unmap(m.data)
}

func (m *Mapping) view() ([]byte, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	return m.data, nil
}

// Bytes returns the mapped file, or nil once closed.
// The slice must not be retained past Close.
func (m *Mapping) Bytes() []byte {
	data, _ := m.view()
	return data
}

// Size returns the file length in bytes. It stays valid after Close.
func (m *Mapping) Size() int64 { return int64(len(m.data)) }

// Advise passes an access pattern hint for the whole mapping to the kernel.
func (m *Mapping) Advise(pattern AccessPattern) error {
	data, err := m.view()
	if err != nil || len(data) == 0 {
		return err
	}
	return osAdvise(data, pattern)
}

// ReadAt implements io.ReaderAt.
func (m *Mapping) ReadAt(p []byte, off int64) (int, error) {
	data, err := m.view()
	switch {
	case err != nil:
		return 0, err
	case off < 0:
		return 0, ErrInvalidOffset
	case off >= int64(len(data)):
		return 0, io.EOF
	}
	n := copy(p, data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
