package ops

import "github.com/hupe1980/bitvec"

// Or folds with set union.
type Or struct{}

// Apply implements executor.AssociativeOp.
func (Or) Apply(acc *bitvec.Mutable, v bitvec.Vector) error {
	_, err := acc.Union(v)
	return err
}

// And folds with set intersection.
type And struct{}

// Apply implements executor.AssociativeOp.
func (And) Apply(acc *bitvec.Mutable, v bitvec.Vector) error {
	_, err := acc.Intersect(v)
	return err
}

// Xor folds with symmetric difference.
type Xor struct{}

// Apply implements executor.AssociativeOp.
func (Xor) Apply(acc *bitvec.Mutable, v bitvec.Vector) error {
	_, err := acc.Xor(v)
	return err
}
