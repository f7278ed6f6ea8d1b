// Package simd provides the word kernels behind bitvec's set algebra.
//
// # Operations
//
//   - In place: AndWords, OrWords, XorWords, AndNotWords
//   - Counting: PopcountWords and the fused PopcountAnd/Or/Xor/AndNot
//   - Probing: AnyAnd
//
// Runtime CPU feature detection selects the kernel set. Targets with a
// hardware population count (x86-64 POPCNT, ARM64 ASIMD) use the unrolled
// kernels; everything else uses the scalar loops. Set BITVEC_SIMD=generic to
// force the scalar kernels.
package simd
