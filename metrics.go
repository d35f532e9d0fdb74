package flatmap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    lookups  prometheus.Counter
//	    overflow prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordLookup(d time.Duration, hit bool, err error) {
//	    p.lookups.Inc()
//	}
type MetricsCollector interface {
	// RecordLookup is called after each Lookup or Contains.
	// hit reports whether the key was present.
	RecordLookup(duration time.Duration, hit bool, err error)

	// RecordLocate is called after each BeginWrite.
	// claimed reports whether a vacant slot was taken for a new key.
	RecordLocate(duration time.Duration, claimed bool, err error)

	// RecordDelete is called after each Delete.
	RecordDelete(duration time.Duration, err error)

	// RecordProbes is called with the number of slots a probe examined.
	RecordProbes(probes int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLookup(time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordLocate(time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error)       {}
func (NoopMetricsCollector) RecordProbes(int)                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LookupCount      atomic.Int64
	LookupHits       atomic.Int64
	LookupErrors     atomic.Int64
	LookupTotalNanos atomic.Int64
	LocateCount      atomic.Int64
	LocateClaims     atomic.Int64
	LocateErrors     atomic.Int64
	LocateTotalNanos atomic.Int64
	DeleteCount      atomic.Int64
	DeleteErrors     atomic.Int64
	ProbeCount       atomic.Int64
	ProbeSlots       atomic.Int64
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, hit bool, err error) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LookupErrors.Add(1)
	} else if hit {
		b.LookupHits.Add(1)
	}
}

// RecordLocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLocate(duration time.Duration, claimed bool, err error) {
	b.LocateCount.Add(1)
	b.LocateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LocateErrors.Add(1)
	} else if claimed {
		b.LocateClaims.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(_ time.Duration, err error) {
	b.DeleteCount.Add(1)
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordProbes implements MetricsCollector.
func (b *BasicMetricsCollector) RecordProbes(probes int) {
	b.ProbeCount.Add(1)
	b.ProbeSlots.Add(int64(probes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LookupCount:    b.LookupCount.Load(),
		LookupHits:     b.LookupHits.Load(),
		LookupErrors:   b.LookupErrors.Load(),
		LookupAvgNanos: avg(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
		LocateCount:    b.LocateCount.Load(),
		LocateClaims:   b.LocateClaims.Load(),
		LocateErrors:   b.LocateErrors.Load(),
		LocateAvgNanos: avg(b.LocateTotalNanos.Load(), b.LocateCount.Load()),
		DeleteCount:    b.DeleteCount.Load(),
		DeleteErrors:   b.DeleteErrors.Load(),
		AvgProbes:      float64(b.ProbeSlots.Load()) / float64(max(b.ProbeCount.Load(), 1)),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LookupCount    int64
	LookupHits     int64
	LookupErrors   int64
	LookupAvgNanos int64
	LocateCount    int64
	LocateClaims   int64
	LocateErrors   int64
	LocateAvgNanos int64
	DeleteCount    int64
	DeleteErrors   int64
	AvgProbes      float64
}
