// Package executor folds or compares many immutable bit vectors in parallel.
//
// An Executor splits the input into ceil(N/parallelism) sized slices and runs
// one task per slice on a fixed WorkerPool. Two modes are supported:
//
//   - Perform applies an AssociativeOp (OR, AND, XOR, ...) across all vectors.
//     Every slice folds into its own accumulator; the partial accumulators
//     are then folded with the same op. Because the op is commutative and
//     associative, the result is identical to a sequential fold.
//   - Compare applies a ComparisonOp to every vector against a fixed target.
//     Output index i always holds the result for input index i.
//
// Inputs at or below the minimum array size (WithMinArraySize, default 20000)
// are processed synchronously on the calling goroutine.
//
// Calls are fail-fast: the first task error or panic cancels the remaining
// slices and is returned wrapped in a *TaskError. No partial results are
// returned and nothing is retried.
//
// Example:
//
//	e := executor.New(executor.WithParallelism(8))
//	defer e.Close()
//
//	union, err := e.Perform(ctx, vectors, numDocs, ops.OR)
//	counts, err := executor.Compare(ctx, e, vectors, target, numDocs, ops.IntersectionCount)
package executor
