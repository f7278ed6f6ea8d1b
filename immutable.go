package bitvec

// Immutable is a bit vector that never changes after construction.
// Set algebra returns new instances and leaves both operands untouched.
// Mutators exist only to satisfy callers written against Mutable and always
// return ErrImmutable.
//
// An Immutable may be shared freely between goroutines.
type Immutable struct {
	words
}

// ImmutableFromWords returns an Immutable holding a copy of src with the
// first wlen words in use.
func ImmutableFromWords(src []uint64, wlen int) (*Immutable, error) {
	w, err := wordsFrom(src, wlen, true)
	if err != nil {
		return nil, err
	}
	return &Immutable{w}, nil
}

func (v *Immutable) storage() *words {
	if v == nil {
		return nil
	}
	return &v.words
}

// Mutable returns a Mutable copy of v.
func (v *Immutable) Mutable() *Mutable {
	return &Mutable{mutableWords{v.clone()}}
}

// Words returns a copy of the in-use words.
func (v *Immutable) Words() []uint64 {
	out := make([]uint64, v.wlen)
	copy(out, v.data[:v.wlen])
	return out
}

// Intersect returns a new vector holding v AND other.
func (v *Immutable) Intersect(other Vector) (*Immutable, error) {
	return v.derive(other, (*mutableWords).intersect)
}

// Union returns a new vector holding v OR other.
func (v *Immutable) Union(other Vector) (*Immutable, error) {
	return v.derive(other, (*mutableWords).union)
}

// Remove returns a new vector holding v AND NOT other.
func (v *Immutable) Remove(other Vector) (*Immutable, error) {
	return v.derive(other, (*mutableWords).remove)
}

// Xor returns a new vector holding v XOR other.
func (v *Immutable) Xor(other Vector) (*Immutable, error) {
	return v.derive(other, (*mutableWords).xor)
}

// And is an alias for Intersect.
func (v *Immutable) And(other Vector) (*Immutable, error) { return v.Intersect(other) }

// Or is an alias for Union.
func (v *Immutable) Or(other Vector) (*Immutable, error) { return v.Union(other) }

// AndNot is an alias for Remove.
func (v *Immutable) AndNot(other Vector) (*Immutable, error) { return v.Remove(other) }

// derive applies op to a private copy of v.
func (v *Immutable) derive(other Vector, op func(*mutableWords, *words)) (*Immutable, error) {
	o, err := operand(other)
	if err != nil {
		return nil, err
	}
	res := mutableWords{v.clone()}
	op(&res, o)
	return &Immutable{res.words}, nil
}

// Set always fails with ErrImmutable.
func (v *Immutable) Set(int64) error { return ErrImmutable }

// Clear always fails with ErrImmutable.
func (v *Immutable) Clear(int64) error { return ErrImmutable }

// Flip always fails with ErrImmutable.
func (v *Immutable) Flip(int64) error { return ErrImmutable }

// SetRange always fails with ErrImmutable.
func (v *Immutable) SetRange(int64, int64) error { return ErrImmutable }

// ClearRange always fails with ErrImmutable.
func (v *Immutable) ClearRange(int64, int64) error { return ErrImmutable }

// FlipRange always fails with ErrImmutable.
func (v *Immutable) FlipRange(int64, int64) error { return ErrImmutable }

// EnsureCapacity always fails with ErrImmutable.
func (v *Immutable) EnsureCapacity(int64) error { return ErrImmutable }

// TrimTrailingZeros always fails with ErrImmutable.
func (v *Immutable) TrimTrailingZeros() error { return ErrImmutable }
