package executor

import (
	"sync/atomic"
	"time"
)

// Mode names the kind of bulk operation.
type Mode string

const (
	// ModeAssociative is a Perform call.
	ModeAssociative Mode = "associative"
	// ModeComparison is a Compare call.
	ModeComparison Mode = "comparison"
)

// MetricsCollector defines an interface for collecting executor metrics.
// See the prommetrics package for a Prometheus implementation.
type MetricsCollector interface {
	// RecordPerform is called once per Perform or Compare call.
	// slices is 1 for the synchronous path; err is nil if successful.
	RecordPerform(mode Mode, vectors, slices int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPerform(Mode, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	AssociativeCount atomic.Int64
	ComparisonCount  atomic.Int64
	Errors           atomic.Int64
	Vectors          atomic.Int64
	Slices           atomic.Int64
	ParallelCount    atomic.Int64
	TotalNanos       atomic.Int64
}

// RecordPerform implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPerform(mode Mode, vectors, slices int, duration time.Duration, err error) {
	switch mode {
	case ModeAssociative:
		b.AssociativeCount.Add(1)
	case ModeComparison:
		b.ComparisonCount.Add(1)
	}
	b.Vectors.Add(int64(vectors))
	b.Slices.Add(int64(slices))
	if slices > 1 {
		b.ParallelCount.Add(1)
	}
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.Errors.Add(1)
	}
}

// MetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type MetricsStats struct {
	AssociativeCount int64
	ComparisonCount  int64
	Errors           int64
	Vectors          int64
	Slices           int64
	ParallelCount    int64
	AvgLatencyNanos  int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	calls := b.AssociativeCount.Load() + b.ComparisonCount.Load()
	var avg int64
	if calls > 0 {
		avg = b.TotalNanos.Load() / calls
	}
	return MetricsStats{
		AssociativeCount: b.AssociativeCount.Load(),
		ComparisonCount:  b.ComparisonCount.Load(),
		Errors:           b.Errors.Load(),
		Vectors:          b.Vectors.Load(),
		Slices:           b.Slices.Load(),
		ParallelCount:    b.ParallelCount.Load(),
		AvgLatencyNanos:  avg,
	}
}
