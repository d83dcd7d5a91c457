package memseg

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/fielddata/column"
	"github.com/hupe1980/fielddata/internal/bitset"
	"github.com/hupe1980/fielddata/presence"
	"github.com/hupe1980/fielddata/segment"
)

// sparseDensity is the presence ratio below which a Roaring bitmap is used
// instead of a dense bitset.
const sparseDensity = 1.0 / 8

// Reader is an immutable in-memory segment.
// It is safe for concurrent use.
type Reader struct {
	id      segment.SegmentID
	numDocs int
	fields  map[string]*field
}

type field struct {
	column   segment.Column
	presence segment.Bitmap // nil for dense fields
}

var _ segment.Reader = (*Reader)(nil)

// ID implements segment.Reader.
func (r *Reader) ID() segment.SegmentID { return r.id }

// NumDocs implements segment.Reader.
func (r *Reader) NumDocs() int { return r.numDocs }

// OpenColumn implements segment.Reader.
func (r *Reader) OpenColumn(name string) (segment.Column, bool, error) {
	f, ok := r.fields[name]
	if !ok {
		return nil, false, nil
	}
	return f.column, true, nil
}

// OpenPresence implements segment.Reader.
func (r *Reader) OpenPresence(name string) (segment.Bitmap, bool, error) {
	f, ok := r.fields[name]
	if !ok || f.presence == nil {
		return nil, false, nil
	}
	return f.presence, true, nil
}

// Fields returns the names of the fields stored in the segment.
func (r *Reader) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	return names
}

// Builder assembles a Reader.
// A Builder is not safe for concurrent use.
type Builder struct {
	id      segment.SegmentID
	numDocs int
	fields  map[string]*fieldBuilder
	order   []string
}

type fieldBuilder struct {
	values      [][]byte
	present     []uint32
	dense       bool
	compression column.Compression
	compressed  bool
	blockDocs   int
}

// NewBuilder creates a builder for a segment of numDocs documents.
func NewBuilder(id segment.SegmentID, numDocs int) *Builder {
	return &Builder{
		id:      id,
		numDocs: numDocs,
		fields:  make(map[string]*fieldBuilder),
	}
}

func (b *Builder) field(name string) *fieldBuilder {
	f, ok := b.fields[name]
	if !ok {
		f = &fieldBuilder{values: make([][]byte, b.numDocs)}
		b.fields[name] = f
		b.order = append(b.order, name)
	}
	return f
}

// Add sets the value of doc for a field. The value is copied.
// doc must be below the segment's document count.
// Adding a second value for the same document replaces the first.
func (b *Builder) Add(name string, doc uint32, value []byte) *Builder {
	f := b.field(name)
	if f.values[doc] == nil {
		f.present = append(f.present, doc)
	}
	f.values[doc] = append(make([]byte, 0, len(value)), value...)
	return b
}

// Dense stores a field without a presence bitmap. Readers will then treat
// every document as having a value, including documents never added.
func (b *Builder) Dense(name string) *Builder {
	b.field(name).dense = true
	return b
}

// Compress stores a field as a block-compressed column.
// blockDocs <= 0 selects column.DefaultBlockDocs.
func (b *Builder) Compress(name string, c column.Compression, blockDocs int) *Builder {
	f := b.field(name)
	f.compressed = true
	f.compression = c
	f.blockDocs = blockDocs
	return b
}

// Build returns the immutable segment.
func (b *Builder) Build() (*Reader, error) {
	r := &Reader{
		id:      b.id,
		numDocs: b.numDocs,
		fields:  make(map[string]*field, len(b.fields)),
	}

	for _, name := range b.order {
		fb := b.fields[name]
		f := &field{}

		if fb.compressed {
			col, err := column.NewCompressed(fb.values, fb.compression, column.WithBlockDocs(fb.blockDocs))
			if err != nil {
				return nil, fmt.Errorf("memseg: field %q: %w", name, err)
			}
			f.column = col
		} else {
			f.column = column.NewRaw(fb.values)
		}

		if !fb.dense {
			f.presence = buildPresence(b.numDocs, fb.present)
		}
		r.fields[name] = f
	}
	return r, nil
}

func buildPresence(numDocs int, present []uint32) segment.Bitmap {
	if numDocs == 0 || float64(len(present))/float64(numDocs) < sparseDensity {
		return presence.NewRoaringBits(roaring.BitmapOf(present...))
	}
	bb := bitset.NewBuilder(uint32(numDocs))
	for _, doc := range present {
		bb.Set(doc)
	}
	return bb.Build()
}
