package executor

import (
	"runtime"

	"github.com/hupe1980/bitvec/resource"
)

// DefaultMinArraySize is the input size at or below which calls run
// synchronously on the caller's goroutine.
const DefaultMinArraySize = 20000

type options struct {
	minArraySize     int
	parallelism      int
	pool             *WorkerPool
	logger           *Logger
	metricsCollector MetricsCollector
	resources        *resource.Controller
}

func defaultOptions() options {
	return options{
		minArraySize:     DefaultMinArraySize,
		parallelism:      runtime.GOMAXPROCS(0),
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures an Executor.
type Option func(*options)

// WithMinArraySize sets the threshold at or below which inputs are processed
// synchronously. Negative values are treated as 0, which makes every call
// with more than one vector go through the pool.
func WithMinArraySize(n int) Option {
	return func(o *options) {
		o.minArraySize = max(n, 0)
	}
}

// WithParallelism sets the number of slices the input is split into.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}

// WithWorkerPool runs tasks on a shared pool. The executor does not close a
// pool it was given.
func WithWorkerPool(pool *WorkerPool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. If nil is passed, metrics
// are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController bounds accumulator memory and concurrently running
// slices with a shared controller.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}
