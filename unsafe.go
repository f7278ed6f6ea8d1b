package bitvec

// Unsafe behaves like Mutable but can wrap a caller-held word array without
// copying it, and exposes the backing array through Words.
//
// The caller is responsible for making sure nothing else mutates the array
// while the Unsafe vector is in use.
type Unsafe struct {
	mutableWords
}

// NewUnsafe returns an empty Unsafe vector with room for numBits bits.
func NewUnsafe(numBits int64) (*Unsafe, error) {
	w, err := newWords(numBits)
	if err != nil {
		return nil, err
	}
	return &Unsafe{mutableWords{w}}, nil
}

// WrapUnsafe returns an Unsafe vector backed directly by src, with the first
// wlen words in use. src is not copied.
func WrapUnsafe(src []uint64, wlen int) (*Unsafe, error) {
	w, err := wordsFrom(src, wlen, false)
	if err != nil {
		return nil, err
	}
	return &Unsafe{mutableWords{w}}, nil
}

func (u *Unsafe) storage() *words {
	if u == nil {
		return nil
	}
	return &u.words
}

// Words returns the backing array, including any headroom past NumWords.
// Growth replaces the array, so the result is only valid until the next
// expanding mutation.
func (u *Unsafe) Words() []uint64 { return u.data }

// SetWords replaces the backing array. All of src is considered in use.
func (u *Unsafe) SetWords(src []uint64) {
	u.data = src
	u.wlen = len(src)
	u.numBits = int64(len(src)) << 6
}

// Immutable returns a snapshot of the current content.
func (u *Unsafe) Immutable() *Immutable {
	return &Immutable{u.clone()}
}

// Mutable returns a Mutable copy of u.
func (u *Unsafe) Mutable() *Mutable {
	return &Mutable{mutableWords{u.clone()}}
}

// Intersect keeps only the bits also set in other.
func (u *Unsafe) Intersect(other Vector) (*Unsafe, error) {
	o, err := operand(other)
	if err != nil {
		return nil, err
	}
	u.intersect(o)
	return u, nil
}

// Union adds the bits set in other.
func (u *Unsafe) Union(other Vector) (*Unsafe, error) {
	o, err := operand(other)
	if err != nil {
		return nil, err
	}
	u.union(o)
	return u, nil
}

// Remove clears the bits set in other.
func (u *Unsafe) Remove(other Vector) (*Unsafe, error) {
	o, err := operand(other)
	if err != nil {
		return nil, err
	}
	u.remove(o)
	return u, nil
}

// Xor toggles the bits set in other.
func (u *Unsafe) Xor(other Vector) (*Unsafe, error) {
	o, err := operand(other)
	if err != nil {
		return nil, err
	}
	u.xor(o)
	return u, nil
}

func (u *Unsafe) And(other Vector) (*Unsafe, error) { return u.Intersect(other) }
func (u *Unsafe) Or(other Vector) (*Unsafe, error) { return u.Union(other) }
func (u *Unsafe) AndNot(other Vector) (*Unsafe, error) { return u.Remove(other) }
