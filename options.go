package flatmap

import (
	"log/slog"

	"github.com/hupe1980/flatmap/alloc"
)

type options struct {
	allocator        alloc.Allocator
	memoryLimit      int64
	hasher           Hasher
	metricsCollector MetricsCollector
	logger           *Logger
	name             string
}

// Option configures a Table at construction.
type Option func(*options)

// WithAllocator routes the slot block and every key buffer through a.
//
// If nil is passed, alloc.Heap is used.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithMemoryLimit caps the bytes the table may hold at once, block and key
// buffers together. Allocations past the limit fail with ErrOutOfMemory.
// It wraps whatever allocator is configured, regardless of option order.
//
// Example:
//
//	m, _ := flatmap.New(1024, flatmap.WithMemoryLimit(64<<10))
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithHasher sets the key hash function. Changing it changes which slots
// keys land in, never which keys are found.
//
// If nil is passed, XXHash is used.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		o.hasher = h
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &flatmap.BasicMetricsCollector{}
//	m, _ := flatmap.New(256, flatmap.WithMetricsCollector(metrics))
//	// ... use m ...
//	stats := metrics.GetStats()
//	fmt.Printf("Lookups: %d, Avg probes: %.2f\n", stats.LookupCount, stats.AvgProbes)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := flatmap.NewJSONLogger(slog.LevelDebug)
//	m, _ := flatmap.New(256, flatmap.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

// WithName tags log output and Stats with name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		allocator:        alloc.Heap{},
		hasher:           XXHash,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.allocator == nil {
		o.allocator = alloc.Heap{}
	}
	if o.memoryLimit > 0 {
		o.allocator = alloc.NewAccounted(o.allocator, o.memoryLimit)
	}
	if o.hasher == nil {
		o.hasher = XXHash
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	o.logger = o.logger.WithName(o.name)
	return o
}
