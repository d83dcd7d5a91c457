package fielddata

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/fielddata/presence"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordOpen is called after each attempt to open a field's doc values.
	// policy is meaningless when err is non-nil.
	RecordOpen(policy presence.Policy, duration time.Duration, err error)

	// RecordCacheHit is called when a Cache serves an already opened field.
	RecordCacheHit()

	// RecordCacheMiss is called when a Cache has to open a field.
	RecordCacheMiss()

	// RecordEvict is called after a segment's fields were evicted.
	RecordEvict(fields int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOpen(presence.Policy, time.Duration, error) {}
func (NoopMetricsCollector) RecordCacheHit()                                  {}
func (NoopMetricsCollector) RecordCacheMiss()                                 {}
func (NoopMetricsCollector) RecordEvict(int)                                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OpenCount      atomic.Int64
	OpenErrors     atomic.Int64
	OpenTotalNanos atomic.Int64
	AllAbsent      atomic.Int64
	AllPresent     atomic.Int64
	Explicit       atomic.Int64
	CacheHits      atomic.Int64
	CacheMisses    atomic.Int64
	Evicted        atomic.Int64
}

// RecordOpen implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOpen(policy presence.Policy, duration time.Duration, err error) {
	b.OpenCount.Add(1)
	b.OpenTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OpenErrors.Add(1)
		return
	}
	switch policy {
	case presence.PolicyAllAbsent:
		b.AllAbsent.Add(1)
	case presence.PolicyAllPresent:
		b.AllPresent.Add(1)
	case presence.PolicyExplicit:
		b.Explicit.Add(1)
	}
}

// RecordCacheHit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheHit() {
	b.CacheHits.Add(1)
}

// RecordCacheMiss implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheMiss() {
	b.CacheMisses.Add(1)
}

// RecordEvict implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvict(fields int) {
	b.Evicted.Add(int64(fields))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		OpenCount:   b.OpenCount.Load(),
		OpenErrors:  b.OpenErrors.Load(),
		AllAbsent:   b.AllAbsent.Load(),
		AllPresent:  b.AllPresent.Load(),
		Explicit:    b.Explicit.Load(),
		CacheHits:   b.CacheHits.Load(),
		CacheMisses: b.CacheMisses.Load(),
		Evicted:     b.Evicted.Load(),
	}
	if stats.OpenCount > 0 {
		stats.OpenAvgNanos = b.OpenTotalNanos.Load() / stats.OpenCount
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	OpenCount    int64
	OpenErrors   int64
	OpenAvgNanos int64
	AllAbsent    int64
	AllPresent   int64
	Explicit     int64
	CacheHits    int64
	CacheMisses  int64
	Evicted      int64
}
