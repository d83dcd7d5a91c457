package fielddata

import (
	"strconv"
	"sync"

	"github.com/hupe1980/fielddata/internal/cache"
	"github.com/hupe1980/fielddata/segment"
	"golang.org/x/sync/singleflight"
)

type cacheKey struct {
	segment segment.SegmentID
	field   string
}

func (k cacheKey) String() string {
	return strconv.FormatUint(uint64(k.segment), 10) + "/" + k.field
}

// Cache keeps opened doc values per (segment, field) for an access session.
//
// Each pair is opened at most once at a time, however many goroutines ask
// for it concurrently. Failed opens are not cached. Entries own no
// resources; call Evict when a segment reader is closed so that no
// accessor outlives it.
type Cache struct {
	opts  options
	lru   *cache.LRU[cacheKey, *BinaryDocValues]
	group singleflight.Group

	// evictMu orders inserts against Evict. epoch counts Evict calls; an
	// open that started before an Evict is returned but not cached.
	evictMu sync.Mutex
	epoch   uint64
}

// NewCache creates a Cache.
func NewCache(optFns ...Option) *Cache {
	opts := applyOptions(optFns)
	return &Cache{
		opts: opts,
		lru:  cache.NewLRU[cacheKey, *BinaryDocValues](opts.cacheCapacity, nil),
	}
}

// Load returns the doc values of field in r, opening them on first use.
func (c *Cache) Load(r segment.Reader, field string) (*BinaryDocValues, error) {
	key := cacheKey{segment: r.ID(), field: field}
	if dv, ok := c.lru.Get(key); ok {
		c.opts.metricsCollector.RecordCacheHit()
		return dv, nil
	}
	c.opts.metricsCollector.RecordCacheMiss()

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		// Another caller may have finished opening between Get and Do.
		if dv, ok := c.lru.Peek(key); ok {
			return dv, nil
		}
		epoch := c.currentEpoch()
		dv, err := load(r, field, &c.opts)
		if err != nil {
			return nil, err
		}

		c.evictMu.Lock()
		if c.epoch == epoch {
			c.lru.Set(key, dv)
		}
		c.evictMu.Unlock()
		return dv, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*BinaryDocValues), nil
}

// Evict drops every cached field of a segment and returns how many were
// dropped.
//
// Opens still in flight when Evict runs are returned to their callers but
// not cached.
func (c *Cache) Evict(id segment.SegmentID) int {
	c.evictMu.Lock()
	c.epoch++
	c.evictMu.Unlock()

	n := c.lru.Invalidate(func(k cacheKey) bool {
		return k.segment == id
	})
	c.opts.logger.LogEvict(id, n)
	c.opts.metricsCollector.RecordEvict(n)
	return n
}

func (c *Cache) currentEpoch() uint64 {
	c.evictMu.Lock()
	defer c.evictMu.Unlock()
	return c.epoch
}

// Len returns the number of cached (segment, field) entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Stats returns cache hit and miss counts.
func (c *Cache) Stats() (hits, misses int64) {
	return c.lru.Stats()
}
