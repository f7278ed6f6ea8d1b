package bitvec

import (
	"math/bits"

	"github.com/hupe1980/bitvec/internal/simd"
)

// Get reports whether the bit at index is set. Indices past the in-use
// words read as false.
func (w *words) Get(index int64) (bool, error) {
	if index < 0 {
		return false, ErrNegativeIndex
	}
	wi := int(index >> 6)
	if wi >= w.wlen {
		return false, nil
	}
	return w.data[wi]&(1<<(uint(index)&63)) != 0, nil
}

// GetUnchecked reports whether the bit at index is set.
// The caller guarantees 0 <= index < NumBits().
func (w *words) GetUnchecked(index int64) bool {
	if debugChecks {
		assertIndex(w, index)
	}
	return w.data[index>>6]&(1<<(uint(index)&63)) != 0
}

// Bit returns the bit at index as 0 or 1. Same precondition as GetUnchecked.
func (w *words) Bit(index int64) int {
	if debugChecks {
		assertIndex(w, index)
	}
	return int(w.data[index>>6]>>(uint(index)&63)) & 1
}

// Cardinality returns the number of set bits.
func (w *words) Cardinality() int64 {
	return simd.PopcountWords(w.data[:w.wlen])
}

// IsEmpty reports whether no bit is set.
func (w *words) IsEmpty() bool {
	for _, x := range w.data[:w.wlen] {
		if x != 0 {
			return false
		}
	}
	return true
}

// NextSetBit returns the index of the first set bit at or after index, or -1.
// A negative index scans from zero.
func (w *words) NextSetBit(index int64) int64 {
	if index < 0 {
		index = 0
	}
	i := int(index >> 6)
	if i >= w.wlen {
		return -1
	}

	word := w.data[i] >> (uint(index) & 63)
	if word != 0 {
		return index + int64(bits.TrailingZeros64(word))
	}

	for i++; i < w.wlen; i++ {
		if word = w.data[i]; word != 0 {
			return int64(i)<<6 + int64(bits.TrailingZeros64(word))
		}
	}
	return -1
}

// PrevSetBit returns the index of the last set bit at or before index, or -1.
// An index past the in-use words scans from the last in-use word.
func (w *words) PrevSetBit(index int64) int64 {
	if index < 0 {
		return -1
	}

	i := int(index >> 6)
	sub := uint(index) & 63
	if i >= w.wlen {
		i = w.wlen - 1
		if i < 0 {
			return -1
		}
		sub = 63
	}

	word := w.data[i] << (63 - sub)
	if word != 0 {
		return int64(i)<<6 + int64(sub) - int64(bits.LeadingZeros64(word))
	}

	for i--; i >= 0; i-- {
		if word = w.data[i]; word != 0 {
			return int64(i)<<6 + 63 - int64(bits.LeadingZeros64(word))
		}
	}
	return -1
}

// Intersects reports whether the two vectors share at least one set bit.
func (w *words) Intersects(other Vector) (bool, error) {
	o, err := operand(other)
	if err != nil {
		return false, err
	}
	n := min(w.wlen, o.wlen)
	return simd.AnyAnd(w.data[:n], o.data[:n]), nil
}

// mutableWords adds the in-place mutators to words. Mutable and Unsafe embed it.
type mutableWords struct {
	words
}

// Set sets the bit at index, growing storage if needed.
func (w *mutableWords) Set(index int64) error {
	if index < 0 {
		return ErrNegativeIndex
	}
	wi := w.expandingWordNum(index)
	w.data[wi] |= 1 << (uint(index) & 63)
	return nil
}

// Clear clears the bit at index. It never grows storage.
func (w *mutableWords) Clear(index int64) error {
	if index < 0 {
		return ErrNegativeIndex
	}
	wi := int(index >> 6)
	if wi >= w.wlen {
		return nil
	}
	w.data[wi] &^= 1 << (uint(index) & 63)
	return nil
}

// Flip toggles the bit at index, growing storage if needed.
func (w *mutableWords) Flip(index int64) error {
	if index < 0 {
		return ErrNegativeIndex
	}
	wi := w.expandingWordNum(index)
	w.data[wi] ^= 1 << (uint(index) & 63)
	return nil
}

// SetRange sets the bits in [start, end). It is a no-op when end <= start.
func (w *mutableWords) SetRange(start, end int64) error {
	if start < 0 {
		return ErrNegativeIndex
	}
	if end <= start {
		return nil
	}

	startWord := int(start >> 6)
	endWord := w.expandingWordNum(end - 1)

	startMask := ^uint64(0) << (uint(start) & 63)
	endMask := ^uint64(0) >> (63 - (uint(end-1) & 63))

	if startWord == endWord {
		w.data[startWord] |= startMask & endMask
		return nil
	}

	w.data[startWord] |= startMask
	for i := startWord + 1; i < endWord; i++ {
		w.data[i] = ^uint64(0)
	}
	w.data[endWord] |= endMask
	return nil
}

// ClearRange clears the bits in [start, end). Words past the in-use range
// are already zero and are left alone.
func (w *mutableWords) ClearRange(start, end int64) error {
	if start < 0 {
		return ErrNegativeIndex
	}
	if end <= start {
		return nil
	}

	startWord := int(start >> 6)
	if startWord >= w.wlen {
		return nil
	}
	endWord := int((end - 1) >> 6)

	// Inverted: keep the bits below start and above end-1.
	keepLow := ^(^uint64(0) << (uint(start) & 63))
	keepHigh := ^(^uint64(0) >> (63 - (uint(end-1) & 63)))

	if startWord == endWord {
		w.data[startWord] &= keepLow | keepHigh
		return nil
	}

	w.data[startWord] &= keepLow
	clear(w.data[startWord+1 : min(w.wlen, endWord)])
	if endWord < w.wlen {
		w.data[endWord] &= keepHigh
	}
	return nil
}

// FlipRange toggles the bits in [start, end), growing storage if needed.
func (w *mutableWords) FlipRange(start, end int64) error {
	if start < 0 {
		return ErrNegativeIndex
	}
	if end <= start {
		return nil
	}

	startWord := int(start >> 6)
	endWord := w.expandingWordNum(end - 1)

	startMask := ^uint64(0) << (uint(start) & 63)
	endMask := ^uint64(0) >> (63 - (uint(end-1) & 63))

	if startWord == endWord {
		w.data[startWord] ^= startMask & endMask
		return nil
	}

	w.data[startWord] ^= startMask
	for i := startWord + 1; i < endWord; i++ {
		w.data[i] = ^w.data[i]
	}
	w.data[endWord] ^= endMask
	return nil
}

// unchecked returns the word index for an unchecked mutator. Storage is never
// grown, but wlen is raised so the write stays visible.
func (w *mutableWords) unchecked(index int64) int {
	if debugChecks {
		assertIndex(&w.words, index)
	}
	wi := int(index >> 6)
	if wi >= w.wlen {
		w.extendLen(wi + 1)
	}
	return wi
}

// SetUnchecked sets the bit at index. The caller guarantees 0 <= index < NumBits().
func (w *mutableWords) SetUnchecked(index int64) {
	wi := w.unchecked(index)
	w.data[wi] |= 1 << (uint(index) & 63)
}

// ClearUnchecked clears the bit at index. The caller guarantees 0 <= index < NumBits().
func (w *mutableWords) ClearUnchecked(index int64) {
	if debugChecks {
		assertIndex(&w.words, index)
	}
	w.data[index>>6] &^= 1 << (uint(index) & 63)
}

// FlipUnchecked toggles the bit at index. The caller guarantees 0 <= index < NumBits().
func (w *mutableWords) FlipUnchecked(index int64) {
	wi := w.unchecked(index)
	w.data[wi] ^= 1 << (uint(index) & 63)
}

// GetAndSet sets the bit at index and returns its previous value.
// The caller guarantees 0 <= index < NumBits().
func (w *mutableWords) GetAndSet(index int64) bool {
	wi := w.unchecked(index)
	mask := uint64(1) << (uint(index) & 63)
	prev := w.data[wi]&mask != 0
	w.data[wi] |= mask
	return prev
}

// FlipAndGet toggles the bit at index and returns its new value.
// The caller guarantees 0 <= index < NumBits().
func (w *mutableWords) FlipAndGet(index int64) bool {
	wi := w.unchecked(index)
	mask := uint64(1) << (uint(index) & 63)
	w.data[wi] ^= mask
	return w.data[wi]&mask != 0
}

// EnsureCapacity grows storage so that numBits bits are addressable without
// further reallocation.
func (w *mutableWords) EnsureCapacity(numBits int64) error {
	if numBits < 0 {
		return ErrNegativeSize
	}
	if numBits == 0 {
		return nil
	}
	w.ensureWordCapacity(wordsFor(numBits))
	if numBits > w.numBits {
		w.numBits = numBits
	}
	return nil
}

// TrimTrailingZeros drops trailing zero words from the in-use range.
// The backing array keeps its size.
func (w *mutableWords) TrimTrailingZeros() {
	i := w.wlen - 1
	for i >= 0 && w.data[i] == 0 {
		i--
	}
	w.wlen = i + 1
}

// Reset clears every bit and restores the word count of a fresh vector of
// NumBits() bits. The allocated storage is kept.
func (w *mutableWords) Reset() {
	n := 0
	if w.numBits > 0 {
		n = min(wordsFor(w.numBits), len(w.data))
	}
	clear(w.data[:max(w.wlen, n)])
	w.wlen = n
}

func (w *mutableWords) intersect(o *words) {
	n := min(w.wlen, o.wlen)
	simd.AndWords(w.data[:n], o.data[:n])
	if w.wlen > n {
		clear(w.data[n:w.wlen])
	}
	w.wlen = n
}

func (w *mutableWords) union(o *words) {
	w.mergeLonger(o, simd.OrWords)
}

func (w *mutableWords) xor(o *words) {
	w.mergeLonger(o, simd.XorWords)
}

func (w *mutableWords) remove(o *words) {
	n := min(w.wlen, o.wlen)
	simd.AndNotWords(w.data[:n], o.data[:n])
}

// mergeLonger applies kernel over the common prefix and copies the tail of
// the longer operand, which is what OR and XOR with an implicit zero give.
func (w *mutableWords) mergeLonger(o *words, kernel func(dst, src []uint64)) {
	common := min(w.wlen, o.wlen)
	newLen := max(w.wlen, o.wlen)

	w.ensureWordCapacity(newLen)
	kernel(w.data[:common], o.data[:common])
	if w.wlen < newLen {
		copy(w.data[w.wlen:newLen], o.data[w.wlen:newLen])
		w.wlen = newLen
	}
	// The other hint is only adopted up to what this storage can address.
	w.numBits = max(w.numBits, min(o.numBits, w.Capacity()))
}
