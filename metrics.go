package neodb

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordLookup is called after each key lookup.
	// duration is the time taken, hit reports whether the key resolved.
	RecordLookup(duration time.Duration, hit bool)

	// RecordQuery is called after each query iteration completes or is
	// abandoned. results is the number of approaches yielded so far,
	// duration is the time from first filter evaluation.
	RecordQuery(results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLookup(time.Duration, bool) {}
func (NoopMetricsCollector) RecordQuery(int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LookupCount      atomic.Int64
	LookupMisses     atomic.Int64
	LookupTotalNanos atomic.Int64
	QueryCount       atomic.Int64
	QueryResults     atomic.Int64
	QueryTotalNanos  atomic.Int64
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, hit bool) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if !hit {
		b.LookupMisses.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// BasicMetricsStats is a snapshot of collected metrics.
type BasicMetricsStats struct {
	LookupCount    int64
	LookupMisses   int64
	LookupAvgNanos int64
	QueryCount     int64
	QueryResults   int64
	QueryAvgNanos  int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		LookupCount:  b.LookupCount.Load(),
		LookupMisses: b.LookupMisses.Load(),
		QueryCount:   b.QueryCount.Load(),
		QueryResults: b.QueryResults.Load(),
	}
	if stats.LookupCount > 0 {
		stats.LookupAvgNanos = b.LookupTotalNanos.Load() / stats.LookupCount
	}
	if stats.QueryCount > 0 {
		stats.QueryAvgNanos = b.QueryTotalNanos.Load() / stats.QueryCount
	}
	return stats
}
