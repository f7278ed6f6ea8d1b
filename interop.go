package bitvec

import (
	"math"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// ToRoaring converts the vector to a 32-bit roaring bitmap.
// Runs of consecutive set bits are added as ranges.
// It fails with ErrOutOfRange if a set bit does not fit in uint32.
func (w *words) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()

	for start := w.NextSetBit(0); start >= 0; {
		end := w.nextClearBit(start)
		if end-1 > math.MaxUint32 {
			return nil, ErrOutOfRange
		}
		rb.AddRange(uint64(start), uint64(end))
		start = w.NextSetBit(end)
	}
	return rb, nil
}

// FromRoaring returns a Mutable holding the values of rb.
func FromRoaring(rb *roaring.Bitmap) (*Mutable, error) {
	if rb == nil {
		return nil, ErrNilOperand
	}
	var numBits int64 = DefaultNumBits
	if !rb.IsEmpty() {
		numBits = int64(rb.Maximum()) + 1
	}
	m, err := NewMutable(numBits)
	if err != nil {
		return nil, err
	}

	it := rb.Iterator()
	for it.HasNext() {
		m.SetUnchecked(int64(it.Next()))
	}
	return m, nil
}

// ToBitSet converts the vector to a bits-and-blooms BitSet sized to the
// in-use words.
func (w *words) ToBitSet() *bitset.BitSet {
	buf := make([]uint64, w.wlen)
	copy(buf, w.data[:w.wlen])
	return bitset.From(buf)
}

// FromBitSet returns a Mutable holding a copy of the bits of bs.
func FromBitSet(bs *bitset.BitSet) (*Mutable, error) {
	if bs == nil {
		return nil, ErrNilOperand
	}
	src := bs.Words()
	return MutableFromWords(src, len(src))
}

// nextClearBit returns the index of the first clear bit at or after index.
// Bits past the in-use words are clear, so the result is at most wlen*64.
func (w *words) nextClearBit(index int64) int64 {
	i := int(index >> 6)
	if i >= w.wlen {
		return index
	}

	word := ^w.data[i] >> (uint(index) & 63)
	if word != 0 {
		return index + int64(bits.TrailingZeros64(word))
	}
	for i++; i < w.wlen; i++ {
		if word = ^w.data[i]; word != 0 {
			return int64(i)<<6 + int64(bits.TrailingZeros64(word))
		}
	}
	return int64(w.wlen) << 6
}
