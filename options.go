package fielddata

import (
	"log/slog"
)

// DefaultCacheCapacity is the default number of (segment, field) entries
// kept by a Cache.
const DefaultCacheCapacity = 1024

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	cacheCapacity    int
}

// Option configures Load and NewCache.
type Option func(*options)

func applyOptions(optFns []Option) options {
	opts := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		cacheCapacity:    DefaultCacheCapacity,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fielddata.NewJSONLogger(slog.LevelDebug)
//	c := fielddata.NewCache(fielddata.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCacheCapacity sets how many (segment, field) entries a Cache keeps.
// A capacity <= 0 means unbounded; entries then live until Evict.
func WithCacheCapacity(capacity int) Option {
	return func(o *options) {
		o.cacheCapacity = capacity
	}
}
