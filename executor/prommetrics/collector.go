// Package prommetrics exports executor metrics to Prometheus.
package prommetrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/bitvec/executor"
)

var _ executor.MetricsCollector = (*Collector)(nil)

// Collector implements executor.MetricsCollector with Prometheus metrics.
type Collector struct {
	latency *prometheus.HistogramVec
	calls   *prometheus.CounterVec
	vectors *prometheus.CounterVec
	slices  prometheus.Histogram
}

// New creates a Collector and registers its metrics with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bitvec_executor_latency_seconds",
			Help:    "Latency of bulk operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"mode", "status"}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitvec_executor_calls_total",
			Help: "Total bulk operations",
		}, []string{"mode", "parallel"}),
		vectors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitvec_executor_vectors_total",
			Help: "Total input vectors processed",
		}, []string{"mode"}),
		slices: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bitvec_executor_slices",
			Help:    "Number of slices per bulk operation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}

	for _, m := range []prometheus.Collector{c.latency, c.calls, c.vectors, c.slices} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordPerform implements executor.MetricsCollector.
func (c *Collector) RecordPerform(mode executor.Mode, vectors, slices int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m := string(mode)
	c.latency.WithLabelValues(m, status).Observe(d.Seconds())
	c.calls.WithLabelValues(m, strconv.FormatBool(slices > 1)).Inc()
	c.vectors.WithLabelValues(m).Add(float64(vectors))
	c.slices.Observe(float64(slices))
}
