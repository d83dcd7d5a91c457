package blobstore

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/hupe1980/fielddata/internal/cache"
	"golang.org/x/sync/errgroup"
)

// DefaultBlockSize is the caching granularity of a CachingStore.
const DefaultBlockSize = 64 * 1024

// maxFetchConcurrency bounds parallel backend reads per ReadAt.
const maxFetchConcurrency = 16

type blockKey struct {
	name  string
	block int64
}

// CachingStore wraps a BlobStore and caches blob content in fixed-size
// blocks. It suits remote stores, where Parquet footers and column chunks
// are re-read each time a field is opened.
type CachingStore struct {
	inner     BlobStore
	blocks    *cache.LRU[blockKey, []byte]
	blockSize int64

	// mu orders block inserts against writes. gens counts writes per blob
	// name; blobs opened before a write no longer populate the cache.
	mu   sync.RWMutex
	gens map[string]uint64
}

var _ BlobStore = (*CachingStore)(nil)

// NewCachingStore creates a CachingStore keeping up to capacity blocks.
// blockSize <= 0 selects DefaultBlockSize.
func NewCachingStore(inner BlobStore, capacity int, blockSize int64) *CachingStore {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &CachingStore{
		inner:     inner,
		blocks:    cache.NewLRU[blockKey, []byte](capacity, nil),
		blockSize: blockSize,
		gens:      make(map[string]uint64),
	}
}

// Open opens a blob whose reads go through the block cache.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	// Read the generation first: a handle racing a write may see old
	// content and must not cache it under the new generation.
	s.mu.RLock()
	gen := s.gens[name]
	s.mu.RUnlock()

	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &cachingBlob{
		inner: b,
		store: s,
		name:  name,
		gen:   gen,
	}, nil
}

// Put writes through and drops cached blocks of the blob.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	defer s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Delete deletes through and drops cached blocks of the blob.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	defer s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List is passed through.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns block cache hits and misses.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.blocks.Stats()
}

// invalidate retires the current generation of name, then drops its blocks.
// Inserts made under the old generation finish before the bump.
func (s *CachingStore) invalidate(name string) {
	s.mu.Lock()
	s.gens[name]++
	s.mu.Unlock()

	s.blocks.Invalidate(func(k blockKey) bool {
		return k.name == name
	})
}

type cachingBlob struct {
	inner Blob
	store *CachingStore
	name  string
	gen   uint64
}

func (b *cachingBlob) Close() error { return b.inner.Close() }

func (b *cachingBlob) Size() int64 { return b.inner.Size() }

func (b *cachingBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	size := b.Size()
	if off >= size {
		return 0, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	bs := b.store.blockSize
	end := min(off+int64(len(p)), size)
	startBlock := off / bs
	endBlock := (end - 1) / bs

	if err := b.fill(ctx, startBlock, endBlock); err != nil {
		return 0, err
	}

	total := 0
	for blk := startBlock; blk <= endBlock; blk++ {
		data, err := b.block(ctx, blk)
		if err != nil {
			return total, err
		}

		blkStart := blk * bs
		from := max(blkStart, off)
		to := min(blkStart+int64(len(data)), end)
		if to <= from {
			break
		}
		total += copy(p[from-off:], data[from-blkStart:to-blkStart])
	}

	if total < len(p) {
		return total, io.EOF
	}
	return total, nil
}

// fill loads the missing blocks of [startBlock, endBlock], one backend
// read per contiguous run.
func (b *cachingBlob) fill(ctx context.Context, startBlock, endBlock int64) error {
	type run struct{ start, count int64 }

	var runs []run
	for blk := startBlock; blk <= endBlock; blk++ {
		if _, ok := b.store.blocks.Peek(blockKey{b.name, blk}); ok {
			continue
		}
		if n := len(runs); n > 0 && runs[n-1].start+runs[n-1].count == blk {
			runs[n-1].count++
			continue
		}
		runs = append(runs, run{start: blk, count: 1})
	}
	if len(runs) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFetchConcurrency)

	for _, r := range runs {
		g.Go(func() error {
			_, err := b.fetch(gctx, r.start, r.count)
			return err
		})
	}
	return g.Wait()
}

func (b *cachingBlob) fetch(ctx context.Context, startBlock, count int64) ([][]byte, error) {
	bs := b.store.blockSize
	off := startBlock * bs
	n := min(count*bs, b.Size()-off)
	if n <= 0 {
		return nil, nil
	}

	buf := make([]byte, n)
	read, err := b.inner.ReadAt(ctx, buf, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	buf = buf[:read]

	var blocks [][]byte
	for i := int64(0); i < count && i*bs < int64(len(buf)); i++ {
		chunk := buf[i*bs : min((i+1)*bs, int64(len(buf)))]
		// Copy so a cached block does not pin the whole run.
		blocks = append(blocks, append([]byte(nil), chunk...))
	}
	b.cache(startBlock, blocks)
	return blocks, nil
}

// cache inserts blocks read from the backend unless the blob was written
// since this handle was opened.
func (b *cachingBlob) cache(startBlock int64, blocks [][]byte) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	if b.store.gens[b.name] != b.gen {
		return
	}
	for i, data := range blocks {
		b.store.blocks.Set(blockKey{b.name, startBlock + int64(i)}, data)
	}
}

// block returns a cached block, reading it again if it was evicted since
// fill.
func (b *cachingBlob) block(ctx context.Context, blk int64) ([]byte, error) {
	if data, ok := b.store.blocks.Get(blockKey{b.name, blk}); ok {
		return data, nil
	}
	blocks, err := b.fetch(ctx, blk, 1)
	if err != nil || len(blocks) == 0 {
		return nil, err
	}
	return blocks[0], nil
}
