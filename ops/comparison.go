package ops

import "github.com/hupe1980/bitvec"

// IntersectionCount computes |v AND target|.
type IntersectionCount struct{}

// Compare returns the number of bits set in both vectors.
func (IntersectionCount) Compare(_ *bitvec.Mutable, v, target *bitvec.Immutable) (int64, error) {
	return bitvec.IntersectionCount(v, target)
}

// UnionCount computes |v OR target|.
type UnionCount struct{}

// Compare returns the number of bits set in either vector.
func (UnionCount) Compare(_ *bitvec.Mutable, v, target *bitvec.Immutable) (int64, error) {
	return bitvec.UnionCount(v, target)
}

// XorCount computes |v XOR target|, the Hamming distance.
type XorCount struct{}

// Compare returns the number of bits set in exactly one vector.
func (XorCount) Compare(_ *bitvec.Mutable, v, target *bitvec.Immutable) (int64, error) {
	return bitvec.XorCount(v, target)
}

// AndNotCount computes |v AND NOT target|.
type AndNotCount struct{}

// Compare returns the number of bits set in v but not in target.
func (AndNotCount) Compare(_ *bitvec.Mutable, v, target *bitvec.Immutable) (int64, error) {
	return bitvec.AndNotCount(v, target)
}

// Intersects reports whether v and target share a set bit.
type Intersects struct{}

// Compare reports whether any bit is set in both vectors.
func (Intersects) Compare(_ *bitvec.Mutable, v, target *bitvec.Immutable) (bool, error) {
	return v.Intersects(target)
}

// Equal reports whether v and target hold the same bits.
type Equal struct{}

// Compare reports whether both vectors hold the same bits.
func (Equal) Compare(_ *bitvec.Mutable, v, target *bitvec.Immutable) (bool, error) {
	return v.Equal(target), nil
}

// Jaccard computes |v AND target| / |v OR target|. Two empty vectors have
// similarity 1.
type Jaccard struct{}

// Compare returns the Jaccard similarity of v and target.
func (Jaccard) Compare(_ *bitvec.Mutable, v, target *bitvec.Immutable) (float64, error) {
	inter, err := bitvec.IntersectionCount(v, target)
	if err != nil {
		return 0, err
	}
	union, err := bitvec.UnionCount(v, target)
	if err != nil {
		return 0, err
	}
	if union == 0 {
		return 1, nil
	}
	return float64(inter) / float64(union), nil
}

// Intersection materializes v AND target. The work is done in the scratch
// vector and only the final snapshot is allocated.
type Intersection struct{}

// Compare returns a snapshot of v AND target built in scratch.
func (Intersection) Compare(scratch *bitvec.Mutable, v, target *bitvec.Immutable) (*bitvec.Immutable, error) {
	if _, err := scratch.Union(v); err != nil {
		return nil, err
	}
	if _, err := scratch.Intersect(target); err != nil {
		return nil, err
	}
	return scratch.Immutable(), nil
}
