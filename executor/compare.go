package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/bitvec"
)

// Compare evaluates op for every vector against target and returns the
// results in input order: result i belongs to vectors[i].
//
// It is a function rather than a method because Go methods cannot declare
// type parameters.
func Compare[T any](ctx context.Context, e *Executor, vectors []*bitvec.Immutable, target *bitvec.Immutable, finalSize int64, op ComparisonOp[T]) ([]T, error) {
	start := time.Now()
	if e == nil {
		return nil, fmt.Errorf("%w: nil executor", ErrInvalidArgument)
	}
	if op == nil {
		return nil, fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: nil target", ErrInvalidArgument)
	}
	if err := e.validate(vectors, finalSize); err != nil {
		return nil, err
	}

	results := make([]T, len(vectors))

	if len(vectors) <= e.opts.minArraySize {
		err := e.runSync(ctx, ModeComparison, len(vectors), func() error {
			return compareRange(ctx, vectors, target, finalSize, op, results)
		})
		e.observe(ctx, ModeComparison, len(vectors), 1, start, err)
		if err != nil {
			return nil, err
		}
		return results, nil
	}

	spans := sliceSpans(len(vectors), e.opts.parallelism)

	reserved := accumulatorBytes(finalSize) * int64(len(spans))
	if err := e.opts.resources.AcquireMemory(reserved); err != nil {
		e.observe(ctx, ModeComparison, len(vectors), len(spans), start, err)
		return nil, err
	}
	defer e.opts.resources.ReleaseMemory(reserved)

	// Spans are disjoint, so every task writes its own part of results.
	err := e.run(ctx, ModeComparison, spans, func(ctx context.Context, _ int, s span) error {
		return compareRange(ctx, vectors[s.from:s.to], target, finalSize, op, results[s.from:s.to])
	})
	e.observe(ctx, ModeComparison, len(vectors), len(spans), start, err)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func compareRange[T any](ctx context.Context, vs []*bitvec.Immutable, target *bitvec.Immutable, finalSize int64, op ComparisonOp[T], out []T) error {
	scratch, err := bitvec.NewMutable(finalSize)
	if err != nil {
		return err
	}

	for i, v := range vs {
		if i&1023 == 1023 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		scratch.Reset()
		r, err := op.Compare(scratch, v, target)
		if err != nil {
			return fmt.Errorf("vector %d: %w", i, err)
		}
		out[i] = r
	}
	return nil
}
