package bitstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/codec"
	"github.com/hupe1980/bitvec/internal/cache"
	"github.com/hupe1980/bitvec/resource"
)

// ErrNotFound is returned when no vector is stored under a name.
var ErrNotFound = blobstore.ErrNotFound

// CacheStats holds the vector cache counters.
type CacheStats = cache.Stats

// Store saves and loads named vectors. It is safe for concurrent use.
type Store struct {
	blobs blobstore.BlobStore
	opts  options
	cache cache.VectorCache
}

// New creates a Store on top of blobs.
func New(blobs blobstore.BlobStore, optFns ...Option) *Store {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{
		blobs: blobs,
		opts:  opts,
		cache: opts.newCache(),
	}
}

// Save writes v under name, replacing any previous vector. Only the words
// in use are written.
func (s *Store) Save(ctx context.Context, name string, v bitvec.Vector) (err error) {
	start := time.Now()
	if name == "" {
		return fmt.Errorf("%w: empty name", bitvec.ErrInvalidArgument)
	}

	wb, err := s.blobs.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("bitstore: create %q: %w", name, err)
	}
	defer func() {
		if err != nil {
			_ = wb.Abort()
		}
	}()

	if err := codec.Encode(resource.NewRateLimitedWriter(ctx, wb, s.opts.resources), v, s.opts.codecOpts...); err != nil {
		return fmt.Errorf("bitstore: encode %q: %w", name, err)
	}
	if err := wb.Sync(); err != nil {
		return fmt.Errorf("bitstore: sync %q: %w", name, err)
	}
	if err := wb.Close(); err != nil {
		return fmt.Errorf("bitstore: close %q: %w", name, err)
	}

	if s.cache != nil {
		s.cache.Invalidate(name)
	}
	s.opts.logger.DebugContext(ctx, "vector saved", "name", name, "duration", time.Since(start))
	return nil
}

// Load reads the vector stored under name.
func (s *Store) Load(ctx context.Context, name string) (*bitvec.Immutable, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(name); ok {
			return v, nil
		}
	}

	start := time.Now()
	v, err := s.load(ctx, name)
	if err != nil {
		if !errors.Is(err, blobstore.ErrNotFound) {
			s.opts.logger.ErrorContext(ctx, "vector load failed", "name", name, "error", err)
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(name, v)
	}
	s.opts.logger.DebugContext(ctx, "vector loaded",
		"name", name,
		"words", v.NumWords(),
		"duration", time.Since(start),
	)
	return v, nil
}

func (s *Store) load(ctx context.Context, name string) (*bitvec.Immutable, error) {
	b, err := s.blobs.Open(ctx, name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("bitstore: %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("bitstore: open %q: %w", name, err)
	}
	defer func() { _ = b.Close() }()

	// Mapped blobs are decoded in place. Decode copies the words out, so
	// the result outlives the mapping.
	if m, ok := b.(blobstore.Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, fmt.Errorf("bitstore: map %q: %w", name, err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("bitstore: decode %q: %w", name, codec.ErrCorrupt)
		}
		if err := s.opts.resources.AcquireIO(ctx, len(data)); err != nil {
			return nil, err
		}
		v, err := codec.Unmarshal(data, s.opts.codecOpts...)
		if err != nil {
			return nil, fmt.Errorf("bitstore: decode %q: %w", name, err)
		}
		return v, nil
	}

	rc, err := b.ReadRange(ctx, 0, b.Size())
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("bitstore: decode %q: %w", name, codec.ErrCorrupt)
		}
		return nil, fmt.Errorf("bitstore: read %q: %w", name, err)
	}
	defer func() { _ = rc.Close() }()

	v, err := codec.Decode(resource.NewRateLimitedReader(ctx, rc, s.opts.resources), s.opts.codecOpts...)
	if err != nil {
		return nil, fmt.Errorf("bitstore: decode %q: %w", name, err)
	}
	return v, nil
}

// LoadAll loads names concurrently. Result i belongs to names[i]. The first
// failure cancels the remaining loads.
func (s *Store) LoadAll(ctx context.Context, names []string) ([]*bitvec.Immutable, error) {
	out := make([]*bitvec.Immutable, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)
	for i, name := range names {
		g.Go(func() error {
			v, err := s.Load(gctx, name)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the vector stored under name. Deleting a missing vector
// is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if s.cache != nil {
		s.cache.Invalidate(name)
	}
	if err := s.blobs.Delete(ctx, name); err != nil {
		return fmt.Errorf("bitstore: delete %q: %w", name, err)
	}
	return nil
}

// List returns the sorted names of stored vectors that start with prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	return s.blobs.List(ctx, prefix)
}

// CacheStats returns the vector cache counters. It is zero without WithCache.
func (s *Store) CacheStats() CacheStats {
	if s.cache == nil {
		return CacheStats{}
	}
	return s.cache.Stats()
}
