package fielddata

import (
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/fielddata/presence"
	"github.com/hupe1980/fielddata/segment"
)

// Logger wraps slog.Logger with field-data specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// LogOpen logs the opening of a field's doc values.
func (l *Logger) LogOpen(id segment.SegmentID, field string, policy presence.Policy, took time.Duration, err error) {
	if err != nil {
		l.Error("open doc values failed",
			"segment", uint64(id),
			"field", field,
			"error", err,
		)
		return
	}
	l.Debug("doc values opened",
		"segment", uint64(id),
		"field", field,
		"presence", policy.String(),
		"took", took,
	)
}

// LogEvict logs the eviction of a segment's cached fields.
func (l *Logger) LogEvict(id segment.SegmentID, evicted int) {
	l.Debug("doc values evicted",
		"segment", uint64(id),
		"fields", evicted,
	)
}
