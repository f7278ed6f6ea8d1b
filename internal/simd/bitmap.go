package simd

import "math/bits"

// ==============================================================================
// Word kernels
// ==============================================================================
//
// All kernels operate on []uint64 bit arrays. In-place kernels write into dst
// and read len(dst) words from src; callers pass equal-length slices.

// Kernel function pointers. Scalar implementations are the default;
// selectKernels swaps in the unrolled set when a hardware popcount exists.
var (
	kernelAndWords       = andWordsGeneric
	kernelAndNotWords    = andNotWordsGeneric
	kernelOrWords        = orWordsGeneric
	kernelXorWords       = xorWordsGeneric
	kernelPopcountWords  = popcountWordsGeneric
	kernelPopcountAnd    = popcountAndGeneric
	kernelPopcountOr     = popcountOrGeneric
	kernelPopcountXor    = popcountXorGeneric
	kernelPopcountAndNot = popcountAndNotGeneric
)

func selectKernels(isa ISA) {
	switch isa {
	case POPCNT, NEON:
		kernelAndWords = andWordsUnrolled
		kernelAndNotWords = andNotWordsUnrolled
		kernelOrWords = orWordsUnrolled
		kernelXorWords = xorWordsUnrolled
		kernelPopcountWords = popcountWordsUnrolled
		kernelPopcountAnd = popcountAndUnrolled
		kernelPopcountOr = popcountOrUnrolled
		kernelPopcountXor = popcountXorUnrolled
		kernelPopcountAndNot = popcountAndNotUnrolled
	default:
		kernelAndWords = andWordsGeneric
		kernelAndNotWords = andNotWordsGeneric
		kernelOrWords = orWordsGeneric
		kernelXorWords = xorWordsGeneric
		kernelPopcountWords = popcountWordsGeneric
		kernelPopcountAnd = popcountAndGeneric
		kernelPopcountOr = popcountOrGeneric
		kernelPopcountXor = popcountXorGeneric
		kernelPopcountAndNot = popcountAndNotGeneric
	}
}

// AndWords performs dst[i] &= src[i] for all words.
func AndWords(dst, src []uint64) {
	kernelAndWords(dst, src[:len(dst)])
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	kernelAndNotWords(dst, src[:len(dst)])
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint64) {
	kernelOrWords(dst, src[:len(dst)])
}

// XorWords performs dst[i] ^= src[i] for all words.
func XorWords(dst, src []uint64) {
	kernelXorWords(dst, src[:len(dst)])
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int64 {
	return kernelPopcountWords(words)
}

// PopcountAnd returns popcount(a[i] & b[i]) summed over len(a) words.
func PopcountAnd(a, b []uint64) int64 {
	return kernelPopcountAnd(a, b[:len(a)])
}

// PopcountOr returns popcount(a[i] | b[i]) summed over len(a) words.
func PopcountOr(a, b []uint64) int64 {
	return kernelPopcountOr(a, b[:len(a)])
}

// PopcountXor returns popcount(a[i] ^ b[i]) summed over len(a) words.
func PopcountXor(a, b []uint64) int64 {
	return kernelPopcountXor(a, b[:len(a)])
}

// PopcountAndNot returns popcount(a[i] &^ b[i]) summed over len(a) words.
func PopcountAndNot(a, b []uint64) int64 {
	return kernelPopcountAndNot(a, b[:len(a)])
}

// AnyAnd reports whether a[i] & b[i] is non-zero for any i < len(a).
// It stops at the first hit, so there is no point in unrolling it.
func AnyAnd(a, b []uint64) bool {
	b = b[:len(a)]
	for i := range a {
		if a[i]&b[i] != 0 {
			return true
		}
	}
	return false
}

// ==============================================================================
// Generic implementations
// ==============================================================================

func andWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] &= src[i]
	}
}

func andNotWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] &^= src[i]
	}
}

func orWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] |= src[i]
	}
}

func xorWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func popcountWordsGeneric(words []uint64) int64 {
	var count int64
	for _, w := range words {
		count += int64(bits.OnesCount64(w))
	}
	return count
}

func popcountAndGeneric(a, b []uint64) int64 {
	var count int64
	for i := range a {
		count += int64(bits.OnesCount64(a[i] & b[i]))
	}
	return count
}

func popcountOrGeneric(a, b []uint64) int64 {
	var count int64
	for i := range a {
		count += int64(bits.OnesCount64(a[i] | b[i]))
	}
	return count
}

func popcountXorGeneric(a, b []uint64) int64 {
	var count int64
	for i := range a {
		count += int64(bits.OnesCount64(a[i] ^ b[i]))
	}
	return count
}

func popcountAndNotGeneric(a, b []uint64) int64 {
	var count int64
	for i := range a {
		count += int64(bits.OnesCount64(a[i] &^ b[i]))
	}
	return count
}

// ==============================================================================
// Unrolled implementations (hardware popcount)
// ==============================================================================

func andWordsUnrolled(dst, src []uint64) {
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

func andNotWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

func orWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

func xorWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

func popcountWordsUnrolled(words []uint64) int64 {
	var c0, c1, c2, c3 int64
	i := 0
	for ; i+4 <= len(words); i += 4 {
		c0 += int64(bits.OnesCount64(words[i]))
		c1 += int64(bits.OnesCount64(words[i+1]))
		c2 += int64(bits.OnesCount64(words[i+2]))
		c3 += int64(bits.OnesCount64(words[i+3]))
	}
	for ; i < len(words); i++ {
		c0 += int64(bits.OnesCount64(words[i]))
	}
	return c0 + c1 + c2 + c3
}

func popcountAndUnrolled(a, b []uint64) int64 {
	var c0, c1, c2, c3 int64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		c0 += int64(bits.OnesCount64(a[i] & b[i]))
		c1 += int64(bits.OnesCount64(a[i+1] & b[i+1]))
		c2 += int64(bits.OnesCount64(a[i+2] & b[i+2]))
		c3 += int64(bits.OnesCount64(a[i+3] & b[i+3]))
	}
	for ; i < len(a); i++ {
		c0 += int64(bits.OnesCount64(a[i] & b[i]))
	}
	return c0 + c1 + c2 + c3
}

func popcountOrUnrolled(a, b []uint64) int64 {
	var c0, c1, c2, c3 int64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		c0 += int64(bits.OnesCount64(a[i] | b[i]))
		c1 += int64(bits.OnesCount64(a[i+1] | b[i+1]))
		c2 += int64(bits.OnesCount64(a[i+2] | b[i+2]))
		c3 += int64(bits.OnesCount64(a[i+3] | b[i+3]))
	}
	for ; i < len(a); i++ {
		c0 += int64(bits.OnesCount64(a[i] | b[i]))
	}
	return c0 + c1 + c2 + c3
}

func popcountXorUnrolled(a, b []uint64) int64 {
	var c0, c1, c2, c3 int64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		c0 += int64(bits.OnesCount64(a[i] ^ b[i]))
		c1 += int64(bits.OnesCount64(a[i+1] ^ b[i+1]))
		c2 += int64(bits.OnesCount64(a[i+2] ^ b[i+2]))
		c3 += int64(bits.OnesCount64(a[i+3] ^ b[i+3]))
	}
	for ; i < len(a); i++ {
		c0 += int64(bits.OnesCount64(a[i] ^ b[i]))
	}
	return c0 + c1 + c2 + c3
}

func popcountAndNotUnrolled(a, b []uint64) int64 {
	var c0, c1, c2, c3 int64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		c0 += int64(bits.OnesCount64(a[i] &^ b[i]))
		c1 += int64(bits.OnesCount64(a[i+1] &^ b[i+1]))
		c2 += int64(bits.OnesCount64(a[i+2] &^ b[i+2]))
		c3 += int64(bits.OnesCount64(a[i+3] &^ b[i+3]))
	}
	for ; i < len(a); i++ {
		c0 += int64(bits.OnesCount64(a[i] &^ b[i]))
	}
	return c0 + c1 + c2 + c3
}
