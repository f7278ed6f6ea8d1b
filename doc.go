// Package bitvec provides word-packed bit vectors: dense sets of non-negative
// integers stored as an array of 64-bit words.
//
// Bit i lives in word i>>6 at position i&63, least-significant bit first.
// Only the first NumWords() words are meaningful; words past that are read as
// zero regardless of their physical content.
//
// Three ownership profiles share one algorithm core:
//
//   - Mutable is exclusively owned. Mutators act in place and grow storage on
//     demand using a ~12.5% oversize policy.
//   - Immutable clones its input and never changes afterwards. Set algebra
//     returns new instances, mutators return ErrImmutable. Immutable vectors
//     are safe to share across goroutines.
//   - Unsafe behaves like Mutable but can wrap and expose a caller-held word
//     array without copying.
//
// All three implement Vector, so any variant can be used as the operand of
// set algebra or of the static counters (IntersectionCount, UnionCount,
// XorCount, AndNotCount).
//
// # Checked and unchecked access
//
// Get, Set, Clear and Flip validate their index. The *Unchecked methods,
// GetAndSet, FlipAndGet and Bit assume 0 <= index < NumBits() and do not
// check it; violating that is a programming error that may panic with an
// out-of-range slice access or silently touch headroom words. Building with
// the bitvecdebug tag turns the precondition into an explicit assertion.
//
// # Concurrency
//
// Mutable and Unsafe vectors are not safe for concurrent use. Immutable
// vectors may be read by any number of goroutines; the executor package
// relies on this to fold many vectors in parallel.
package bitvec
