package bitstore

import (
	"runtime"

	"github.com/hupe1980/bitvec/codec"
	"github.com/hupe1980/bitvec/executor"
	"github.com/hupe1980/bitvec/internal/cache"
	"github.com/hupe1980/bitvec/resource"
)

type options struct {
	codecOpts   []codec.Option
	logger      *executor.Logger
	resources   *resource.Controller
	cacheBytes  int64
	concurrency int
}

func defaultOptions() options {
	return options{
		logger:      executor.NoopLogger(),
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// Option configures a Store.
type Option func(*options)

// WithCompression sets the payload compression used by Save.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.codecOpts = append(o.codecOpts, codec.WithCompression(c))
	}
}

// WithZSTDLevel sets the zstd level used by Save.
func WithZSTDLevel(level int) Option {
	return func(o *options) {
		o.codecOpts = append(o.codecOpts, codec.WithZSTDLevel(level))
	}
}

// WithMaxWords bounds the vector size Load accepts.
func WithMaxWords(n int) Option {
	return func(o *options) {
		o.codecOpts = append(o.codecOpts, codec.WithMaxWords(n))
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *executor.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = executor.NoopLogger()
		}
		o.logger = l
	}
}

// WithResourceController rate-limits blob IO and charges the vector cache
// against rc's memory budget.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithCache enables a cache of decoded vectors bounded to the given bytes.
func WithCache(bytes int64) Option {
	return func(o *options) {
		o.cacheBytes = bytes
	}
}

// WithConcurrency sets how many blobs LoadAll reads at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

func (o *options) newCache() cache.VectorCache {
	if o.cacheBytes <= 0 {
		return nil
	}
	return cache.NewShardedLRU(o.cacheBytes, o.resources)
}
