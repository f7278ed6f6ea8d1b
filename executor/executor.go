package executor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hupe1980/bitvec"
)

// Executor runs bulk operations over immutable vectors on a worker pool.
// It is safe for concurrent use.
type Executor struct {
	opts      options
	pool      *WorkerPool
	ownsPool  bool
	closed    atomic.Bool
	closeOnce sync.Once
}

// New creates an Executor. Without WithWorkerPool it starts a pool of
// parallelism workers, which Close shuts down.
func New(optFns ...Option) *Executor {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	e := &Executor{opts: opts, pool: opts.pool}
	if e.pool == nil {
		e.pool = NewWorkerPool(opts.parallelism)
		e.ownsPool = true
	}
	return e
}

// Close releases the executor. Calls made after Close fail with ErrClosed.
func (e *Executor) Close() error {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		if e.ownsPool {
			e.pool.Close()
		}
	})
	return nil
}

// MinArraySize returns the synchronous-path threshold.
func (e *Executor) MinArraySize() int { return e.opts.minArraySize }

// Parallelism returns the number of slices large inputs are split into.
func (e *Executor) Parallelism() int { return e.opts.parallelism }

// Perform folds all vectors with op and returns the result as a new Mutable.
//
// Each fold starts from a fresh accumulator of finalSize bits seeded with a
// copy of the first vector of its range, so ops like AND are not
// annihilated by an empty seed.
func (e *Executor) Perform(ctx context.Context, vectors []*bitvec.Immutable, finalSize int64, op AssociativeOp) (*bitvec.Mutable, error) {
	start := time.Now()
	if op == nil {
		return nil, fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	if err := e.validate(vectors, finalSize); err != nil {
		return nil, err
	}

	if len(vectors) <= e.opts.minArraySize {
		var res *bitvec.Mutable
		err := e.runSync(ctx, ModeAssociative, len(vectors), func() (err error) {
			res, err = fold(ctx, vectors, finalSize, op)
			return err
		})
		e.observe(ctx, ModeAssociative, len(vectors), 1, start, err)
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	spans := sliceSpans(len(vectors), e.opts.parallelism)
	partials := make([]*bitvec.Mutable, len(spans))

	reserved := accumulatorBytes(finalSize) * int64(len(spans))
	if err := e.opts.resources.AcquireMemory(reserved); err != nil {
		e.observe(ctx, ModeAssociative, len(vectors), len(spans), start, err)
		return nil, err
	}
	defer e.opts.resources.ReleaseMemory(reserved)

	err := e.run(ctx, ModeAssociative, spans, func(ctx context.Context, i int, s span) error {
		acc, err := fold(ctx, vectors[s.from:s.to], finalSize, op)
		if err != nil {
			return err
		}
		partials[i] = acc
		return nil
	})
	if err != nil {
		e.observe(ctx, ModeAssociative, len(vectors), len(spans), start, err)
		return nil, err
	}

	// Partials are no longer written, so they can be read as operands directly.
	res, err := fold(ctx, partials, finalSize, op)
	e.observe(ctx, ModeAssociative, len(vectors), len(spans), start, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// fold applies op over vs into a fresh accumulator of finalSize bits.
func fold[V bitvec.Vector](ctx context.Context, vs []V, finalSize int64, op AssociativeOp) (*bitvec.Mutable, error) {
	acc, err := bitvec.NewMutable(finalSize)
	if err != nil {
		return nil, err
	}
	if len(vs) == 0 {
		return acc, nil
	}

	if _, err := acc.Union(vs[0]); err != nil {
		return nil, err
	}
	for i := 1; i < len(vs); i++ {
		if i&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if err := op.Apply(acc, vs[i]); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (e *Executor) validate(vectors []*bitvec.Immutable, finalSize int64) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if len(vectors) == 0 {
		return fmt.Errorf("%w: no vectors", ErrInvalidArgument)
	}
	if finalSize < 0 {
		return fmt.Errorf("%w: negative final size %d", ErrInvalidArgument, finalSize)
	}
	for i, v := range vectors {
		if v == nil {
			return fmt.Errorf("%w: nil vector at index %d", ErrInvalidArgument, i)
		}
	}
	return nil
}

// runSync runs task on the calling goroutine with the same panic handling as
// a pooled slice.
func (e *Executor) runSync(ctx context.Context, mode Mode, n int, task func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TaskError{Slice: 0, From: 0, To: n, Err: fmt.Errorf("%w: %v", ErrTaskPanic, r)}
		}
	}()
	if err := ctx.Err(); err != nil {
		return err
	}
	e.opts.logger.LogSlice(ctx, mode, 0, 0, n)
	if err := task(); err != nil {
		return &TaskError{Slice: 0, From: 0, To: n, Err: err}
	}
	return nil
}

// run submits one task per span and waits for all of them. The first failure
// cancels the remaining tasks and is returned.
func (e *Executor) run(parent context.Context, mode Mode, spans []span, task func(ctx context.Context, i int, s span) error) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i, s := range spans {
		wg.Add(1)
		err := e.pool.Submit(ctx, func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					fail(&TaskError{Slice: i, From: s.from, To: s.to, Err: fmt.Errorf("%w: %v", ErrTaskPanic, r)})
				}
			}()

			if ctx.Err() != nil {
				return
			}
			if err := e.opts.resources.AcquireWorker(ctx); err != nil {
				fail(&TaskError{Slice: i, From: s.from, To: s.to, Err: err})
				return
			}
			defer e.opts.resources.ReleaseWorker()

			e.opts.logger.LogSlice(ctx, mode, i, s.from, s.to)
			if err := task(ctx, i, s); err != nil {
				fail(&TaskError{Slice: i, From: s.from, To: s.to, Err: err})
			}
		})
		if err != nil {
			wg.Done()
			fail(err)
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return parent.Err()
}

// accumulatorBytes is the memory reserved per slice accumulator.
func accumulatorBytes(finalSize int64) int64 {
	return (finalSize + 63) >> 6 << 3
}

func (e *Executor) observe(ctx context.Context, mode Mode, vectors, slices int, start time.Time, err error) {
	d := time.Since(start)
	e.opts.metricsCollector.RecordPerform(mode, vectors, slices, d, err)
	e.opts.logger.LogPerform(ctx, mode, vectors, slices, d, err)
}
