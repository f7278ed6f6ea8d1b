package bitvec

// Vector is the read-only view shared by Mutable, Immutable and Unsafe.
//
// The interface is sealed: only types in this package implement it, which
// lets binary operations reach the operand's words directly.
type Vector interface {
	Get(index int64) (bool, error)
	GetUnchecked(index int64) bool
	Bit(index int64) int
	Cardinality() int64
	IsEmpty() bool
	Capacity() int64
	NumWords() int
	NumBits() int64
	NextSetBit(index int64) int64
	PrevSetBit(index int64) int64
	Intersects(other Vector) (bool, error)
	Equal(other Vector) bool
	Hash() uint32

	storage() *words
}

var (
	_ Vector = (*Mutable)(nil)
	_ Vector = (*Immutable)(nil)
	_ Vector = (*Unsafe)(nil)
)

// operand returns the storage behind v, rejecting nil interfaces and typed nil pointers.
func operand(v Vector) (*words, error) {
	if v == nil {
		return nil, ErrNilOperand
	}
	w := v.storage()
	if w == nil {
		return nil, ErrNilOperand
	}
	return w, nil
}
