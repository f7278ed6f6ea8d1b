package bitvec

import "math/bits"

// hashSeed keeps the hash of an empty vector away from zero.
const hashSeed = 0x98761234

// Equal reports whether other holds exactly the same set bits. Trailing zero
// words and spare capacity are ignored, so vectors of different variants or
// lengths can be equal.
func (w *words) Equal(other Vector) bool {
	if other == nil {
		return false
	}
	o := other.storage()
	if o == nil {
		return false
	}
	if o == w {
		return true
	}

	a, b := w, o
	if b.wlen > a.wlen {
		a, b = b, a
	}
	for i := a.wlen - 1; i >= b.wlen; i-- {
		if a.data[i] != 0 {
			return false
		}
	}
	for i := b.wlen - 1; i >= 0; i-- {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Hash returns an order-sensitive hash of the set bits, consistent with Equal.
//
// Words are folded from the highest down with rotate-left-by-one and XOR, so
// trailing zero words leave the value unchanged.
func (w *words) Hash() uint32 {
	var h uint64
	for i := w.wlen - 1; i >= 0; i-- {
		h ^= w.data[i]
		h = bits.RotateLeft64(h, 1)
	}
	return uint32(h>>32^h) + hashSeed
}
