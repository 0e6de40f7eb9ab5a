package fastsplit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// The iterator and the locator never report metrics; they are too hot for
// per-call instrumentation.
type MetricsCollector interface {
	// RecordIndexBuild is called after each NewIndex call.
	// size is the buffer length in bytes, segments the number of segments
	// indexed, err is nil if successful.
	RecordIndexBuild(size, segments int, duration time.Duration, err error)

	// RecordSegmentLookup is called after each Index.Segment or
	// Index.SegmentAt call.
	RecordSegmentLookup(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIndexBuild(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSegmentLookup(error)                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IndexBuildCount      atomic.Int64
	IndexBuildErrors     atomic.Int64
	IndexBuildTotalNanos atomic.Int64
	IndexedBytes         atomic.Int64
	IndexedSegments      atomic.Int64
	LookupCount          atomic.Int64
	LookupErrors         atomic.Int64
}

// RecordIndexBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexBuild(size, segments int, duration time.Duration, err error) {
	b.IndexBuildCount.Add(1)
	b.IndexBuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IndexBuildErrors.Add(1)
		return
	}
	b.IndexedBytes.Add(int64(size))
	b.IndexedSegments.Add(int64(segments))
}

// RecordSegmentLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegmentLookup(err error) {
	b.LookupCount.Add(1)
	if err != nil {
		b.LookupErrors.Add(1)
	}
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	IndexBuildCount    int64
	IndexBuildErrors   int64
	AvgIndexBuildNanos int64
	IndexedBytes       int64
	IndexedSegments    int64
	LookupCount        int64
	LookupErrors       int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	builds := b.IndexBuildCount.Load()

	var avg int64
	if builds > 0 {
		avg = b.IndexBuildTotalNanos.Load() / builds
	}

	return BasicMetricsStats{
		IndexBuildCount:    builds,
		IndexBuildErrors:   b.IndexBuildErrors.Load(),
		AvgIndexBuildNanos: avg,
		IndexedBytes:       b.IndexedBytes.Load(),
		IndexedSegments:    b.IndexedSegments.Load(),
		LookupCount:        b.LookupCount.Load(),
		LookupErrors:       b.LookupErrors.Load(),
	}
}
