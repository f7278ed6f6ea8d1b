package bitvec

// DefaultNumBits is the capacity of a vector created with New.
const DefaultNumBits = 64

// Mutable is an exclusively owned bit vector. Mutators act in place and may
// reallocate the backing array; set algebra modifies the receiver and returns
// it for chaining.
type Mutable struct {
	mutableWords
}

// New returns an empty Mutable with room for DefaultNumBits bits.
func New() *Mutable {
	m, _ := NewMutable(DefaultNumBits)
	return m
}

// NewMutable returns an empty Mutable with room for numBits bits.
func NewMutable(numBits int64) (*Mutable, error) {
	w, err := newWords(numBits)
	if err != nil {
		return nil, err
	}
	return &Mutable{mutableWords{w}}, nil
}

// MutableFromWords returns a Mutable holding a copy of src with the first
// wlen words in use.
func MutableFromWords(src []uint64, wlen int) (*Mutable, error) {
	w, err := wordsFrom(src, wlen, true)
	if err != nil {
		return nil, err
	}
	return &Mutable{mutableWords{w}}, nil
}

func (m *Mutable) storage() *words {
	if m == nil {
		return nil
	}
	return &m.words
}

// Clone returns an independent copy of m.
func (m *Mutable) Clone() *Mutable {
	return &Mutable{mutableWords{m.clone()}}
}

// Immutable returns a snapshot of the current content.
func (m *Mutable) Immutable() *Immutable {
	return &Immutable{m.clone()}
}

// Unsafe returns an Unsafe copy of m. The copy never aliases m's storage.
func (m *Mutable) Unsafe() *Unsafe {
	return &Unsafe{mutableWords{m.clone()}}
}

// Intersect keeps only the bits also set in other. The result has the
// shorter operand's word length.
func (m *Mutable) Intersect(other Vector) (*Mutable, error) {
	o, err := operand(other)
	if err != nil {
		return nil, err
	}
	m.intersect(o)
	return m, nil
}

// Union adds the bits set in other. The result has the longer operand's word length.
func (m *Mutable) Union(other Vector) (*Mutable, error) {
	o, err := operand(other)
	if err != nil {
		return nil, err
	}
	m.union(o)
	return m, nil
}

// Remove clears the bits set in other. The word length is unchanged.
func (m *Mutable) Remove(other Vector) (*Mutable, error) {
	o, err := operand(other)
	if err != nil {
		return nil, err
	}
	m.remove(o)
	return m, nil
}

// Xor toggles the bits set in other. The result has the longer operand's word length.
func (m *Mutable) Xor(other Vector) (*Mutable, error) {
	o, err := operand(other)
	if err != nil {
		return nil, err
	}
	m.xor(o)
	return m, nil
}

// And is an alias for Intersect.
func (m *Mutable) And(other Vector) (*Mutable, error) { return m.Intersect(other) }

// Or is an alias for Union.
func (m *Mutable) Or(other Vector) (*Mutable, error) { return m.Union(other) }

// AndNot is an alias for Remove.
func (m *Mutable) AndNot(other Vector) (*Mutable, error) { return m.Remove(other) }
