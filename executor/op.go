package executor

import "github.com/hupe1980/bitvec"

// AssociativeOp folds v into acc in place. Implementations must be
// commutative and associative so that any slicing yields the same result.
//
// v is read-only and may be shared with other goroutines.
type AssociativeOp interface {
	Apply(acc *bitvec.Mutable, v bitvec.Vector) error
}

// AssociativeFunc adapts a function to AssociativeOp.
type AssociativeFunc func(acc *bitvec.Mutable, v bitvec.Vector) error

// Apply implements AssociativeOp.
func (f AssociativeFunc) Apply(acc *bitvec.Mutable, v bitvec.Vector) error { return f(acc, v) }

// ComparisonOp computes a result for one vector against the target.
//
// scratch is a per-slice Mutable of the call's final size. Before every
// call it is cleared and its word count restored to that size, so changes
// an operation makes to it never leak into the next item. Operations that
// need a temporary vector should use it instead of allocating.
type ComparisonOp[T any] interface {
	Compare(scratch *bitvec.Mutable, v, target *bitvec.Immutable) (T, error)
}

// ComparisonFunc adapts a function to ComparisonOp.
type ComparisonFunc[T any] func(scratch *bitvec.Mutable, v, target *bitvec.Immutable) (T, error)

// Compare implements ComparisonOp.
func (f ComparisonFunc[T]) Compare(scratch *bitvec.Mutable, v, target *bitvec.Immutable) (T, error) {
	return f(scratch, v, target)
}
