package bitvec

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoaringRoundTrip(t *testing.T) {
	m := fromBits(t, 64, 0, 1, 2, 63, 64, 65, 4000)
	require.NoError(t, m.SetRange(10_000, 12_345))

	rb, err := m.ToRoaring()
	require.NoError(t, err)
	assert.Equal(t, uint64(m.Cardinality()), rb.GetCardinality())
	assert.True(t, rb.Contains(4000))
	assert.True(t, rb.Contains(12_344))
	assert.False(t, rb.Contains(12_345))

	back, err := FromRoaring(rb)
	require.NoError(t, err)
	assert.True(t, back.Equal(m))
}

func TestFromRoaring_Empty(t *testing.T) {
	m, err := FromRoaring(roaring.New())
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())

	_, err = FromRoaring(nil)
	assert.ErrorIs(t, err, ErrNilOperand)
}

func TestBitSetRoundTrip(t *testing.T) {
	m := fromBits(t, 300, 3, 64, 299)

	bs := m.Immutable().ToBitSet()
	assert.Equal(t, uint(3), bs.Count())
	assert.True(t, bs.Test(299))

	back, err := FromBitSet(bs)
	require.NoError(t, err)
	assert.True(t, back.Equal(m))

	bs.Set(5)
	assert.Equal(t, int64(3), back.Cardinality())
	assert.Equal(t, int64(3), m.Cardinality())
}

func TestFromBitSet_Nil(t *testing.T) {
	_, err := FromBitSet(nil)
	assert.ErrorIs(t, err, ErrNilOperand)

	m, err := FromBitSet(bitset.New(0))
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
}
