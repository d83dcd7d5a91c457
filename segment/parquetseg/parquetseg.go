package parquetseg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/fielddata/blobstore"
	"github.com/hupe1980/fielddata/column"
	"github.com/hupe1980/fielddata/presence"
	"github.com/hupe1980/fielddata/segment"
	"github.com/parquet-go/parquet-go"
)

// ErrUnsupportedColumn is returned when a field maps to a column that
// cannot be read as single-valued byte strings.
var ErrUnsupportedColumn = errors.New("unsupported parquet column")

// Reader is a segment backed by a Parquet file. Each row is a document;
// each BYTE_ARRAY or FIXED_LEN_BYTE_ARRAY leaf column is a field.
//
// Columns are materialized into memory the first time a field is opened
// and kept for the reader's lifetime. Reader is safe for concurrent use.
type Reader struct {
	id     segment.SegmentID
	file   *parquet.File
	closer io.Closer

	mu     sync.Mutex
	loaded map[string]*field
}

type field struct {
	column   *column.Raw
	presence segment.Bitmap // nil when no row can be null
}

var _ segment.Reader = (*Reader)(nil)

type options struct {
	id segment.SegmentID
}

// Option configures Open.
type Option func(*options)

// WithSegmentID sets the segment id reported by the reader.
func WithSegmentID(id segment.SegmentID) Option {
	return func(o *options) {
		o.id = id
	}
}

// Open opens a Parquet file as a segment.
func Open(r io.ReaderAt, size int64, optFns ...Option) (*Reader, error) {
	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}

	f, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("parquetseg: open file: %w", err)
	}

	return &Reader{
		id:     opts.id,
		file:   f,
		loaded: make(map[string]*field),
	}, nil
}

// OpenBlob opens a Parquet segment stored in a blob store.
//
// ctx bounds every read made through the returned reader, including
// column loads after OpenBlob returns. The reader owns the blob; Close
// releases it.
func OpenBlob(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Reader, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("parquetseg: %w", err)
	}

	var ra io.ReaderAt
	if m, ok := b.(blobstore.Mappable); ok {
		if data, err := m.Bytes(); err == nil {
			ra = bytes.NewReader(data)
		}
	}
	if ra == nil {
		ra = blobstore.NewReaderAt(ctx, b)
	}

	r, err := Open(ra, b.Size(), optFns...)
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	r.closer = b
	return r, nil
}

// Close releases the blob behind a reader created by OpenBlob. Columns
// handed out before must not be used afterwards. Close is a no-op for
// readers created by Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ID implements segment.Reader.
func (r *Reader) ID() segment.SegmentID { return r.id }

// NumDocs implements segment.Reader.
func (r *Reader) NumDocs() int { return int(r.file.NumRows()) }

// OpenColumn implements segment.Reader.
// Nested fields are addressed with dotted paths ("a.b").
func (r *Reader) OpenColumn(name string) (segment.Column, bool, error) {
	f, ok, err := r.load(name)
	if err != nil || !ok {
		return nil, false, err
	}
	return f.column, true, nil
}

// OpenPresence implements segment.Reader.
// Columns whose path is required at every level have no presence bitmap.
func (r *Reader) OpenPresence(name string) (segment.Bitmap, bool, error) {
	f, ok, err := r.load(name)
	if err != nil || !ok || f.presence == nil {
		return nil, false, err
	}
	return f.presence, true, nil
}

func (r *Reader) load(name string) (*field, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.loaded[name]; ok {
		return f, true, nil
	}

	col := r.lookup(name)
	if col == nil {
		return nil, false, nil
	}

	f, err := r.readColumn(name, col)
	if err != nil {
		return nil, false, err
	}
	r.loaded[name] = f
	return f, true, nil
}

func (r *Reader) lookup(name string) *parquet.Column {
	col := r.file.Root()
	for _, part := range strings.Split(name, ".") {
		col = col.Column(part)
		if col == nil {
			return nil
		}
	}
	return col
}

func (r *Reader) readColumn(name string, col *parquet.Column) (*field, error) {
	if !col.Leaf() || col.MaxRepetitionLevel() > 0 {
		return nil, fmt.Errorf("%w: %q is not a single-valued leaf", ErrUnsupportedColumn, name)
	}
	switch kind := col.Type().Kind(); kind {
	case parquet.ByteArray, parquet.FixedLenByteArray:
	default:
		return nil, fmt.Errorf("%w: %q has physical type %s", ErrUnsupportedColumn, name, kind)
	}

	numRows := r.NumDocs()
	builder := column.NewRawBuilder(numRows)
	var present *roaring.Bitmap
	// A required leaf below an optional group is still null when the
	// group is, so nullability is decided by the whole path.
	if col.MaxDefinitionLevel() > 0 {
		present = roaring.New()
	}

	pages := col.Pages()
	defer pages.Close()

	values := make([]parquet.Value, 256)
	for {
		page, err := pages.ReadPage()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read page of %q: %w", name, err)
		}

		vr := page.Values()
		for {
			n, err := vr.ReadValues(values)
			for _, v := range values[:n] {
				if v.IsNull() {
					builder.AppendEmpty()
					continue
				}
				if present != nil {
					present.Add(uint32(builder.Len()))
				}
				builder.Append(v.ByteArray())
			}
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				parquet.Release(page)
				return nil, fmt.Errorf("read values of %q: %w", name, err)
			}
		}
		parquet.Release(page)
	}

	if builder.Len() != numRows {
		return nil, fmt.Errorf("column %q has %d values for %d rows", name, builder.Len(), numRows)
	}

	f := &field{column: builder.Build()}
	if present != nil {
		present.RunOptimize()
		f.presence = presence.NewRoaringBits(present)
	}
	return f, nil
}
