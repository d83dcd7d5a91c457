package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore limits the read throughput of another BlobStore.
// Writes, deletes and listings are not limited.
type ThrottledStore struct {
	BlobStore
	limiter *rate.Limiter
}

var _ BlobStore = (*ThrottledStore)(nil)

// NewThrottledStore wraps inner with a limit of bytesPerSec read bytes per
// second, allowing bursts of one second. bytesPerSec <= 0 disables the
// limit.
func NewThrottledStore(inner BlobStore, bytesPerSec int64) *ThrottledStore {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if bytesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
	}
	return &ThrottledStore{
		BlobStore: inner,
		limiter:   limiter,
	}
}

// Open opens a blob whose reads wait for the limiter.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.BlobStore.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	if s.limiter.Limit() == rate.Inf {
		return b, nil
	}
	return &throttledBlob{Blob: b, limiter: s.limiter}, nil
}

type throttledBlob struct {
	Blob
	limiter *rate.Limiter
}

// ReadAt reads in chunks of at most one burst so that large reads do not
// exceed what the limiter can ever grant.
func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	burst := b.limiter.Burst()
	total := 0
	for total < len(p) {
		chunk := p[total:min(len(p), total+burst)]
		if err := b.limiter.WaitN(ctx, len(chunk)); err != nil {
			return total, err
		}
		n, err := b.Blob.ReadAt(ctx, chunk, off+int64(total))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
