package flatmap

import (
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Overflow warnings are sampled: a burst of overflowSampleBurst, then one per
// overflowSampleEvery. Dropped warnings are counted and reported with the
// next one that gets through.
const (
	overflowSampleEvery = time.Second
	overflowSampleBurst = 5
)

// Logger wraps slog.Logger with flatmap-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger

	sampler    *rate.Limiter
	suppressed *atomic.Int64
}

func newLogger(l *slog.Logger) *Logger {
	return &Logger{
		Logger:     l,
		sampler:    rate.NewLimiter(rate.Every(overflowSampleEvery), overflowSampleBurst),
		suppressed: new(atomic.Int64),
	}
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return newLogger(slog.New(handler))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return newLogger(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return newLogger(slog.New(slog.DiscardHandler))
}

// with derives a logger that shares the overflow sampler.
func (l *Logger) with(args ...any) *Logger {
	return &Logger{
		Logger:     l.Logger.With(args...),
		sampler:    l.sampler,
		suppressed: l.suppressed,
	}
}

// WithName adds a table name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	if name == "" {
		return l
	}
	return l.with("table", name)
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return l.with("capacity", capacity)
}

// LogCreate logs table construction.
func (l *Logger) LogCreate(capacity, blockBytes int, err error) {
	if err != nil {
		l.Error("create failed",
			"capacity", capacity,
			"block_bytes", blockBytes,
			"error", err,
		)
		return
	}
	l.Debug("alloc",
		"capacity", capacity,
		"block_bytes", blockBytes,
	)
}

// LogDestroy logs table teardown.
func (l *Logger) LogDestroy(keysReleased, blockBytes int, err error) {
	if err != nil {
		l.Error("destroy failed",
			"keys_released", keysReleased,
			"block_bytes", blockBytes,
			"error", err,
		)
		return
	}
	l.Debug("free",
		"keys_released", keysReleased,
		"block_bytes", blockBytes,
	)
}

// LogOverflow logs a write that found no slot within its probe window.
// Output is rate limited.
func (l *Logger) LogOverflow(key []byte, probes int) {
	if !l.sampler.Allow() {
		l.suppressed.Add(1)
		return
	}
	l.Warn("probe window exhausted",
		"key", string(key),
		"probes", probes,
		"suppressed", l.suppressed.Swap(0),
	)
}

// LogDelete logs a delete that failed to release its key buffer.
func (l *Logger) LogDelete(key []byte, err error) {
	if err != nil {
		l.Error("delete failed",
			"key", string(key),
			"error", err,
		)
	}
}
