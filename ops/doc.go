// Package ops provides stock operations for the executor package.
//
// Associative ops (Or, And, Xor) fold a vector into an accumulator and can be
// passed to Executor.Perform. Comparison ops compute one result per vector
// against a target and can be passed to executor.Compare.
//
// The types satisfy executor.AssociativeOp and executor.ComparisonOp[T]
// structurally; this package does not import the executor.
package ops
