//go:build bitvecdebug

package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugChecks_AssertUncheckedIndex(t *testing.T) {
	m, err := NewMutable(100)
	require.NoError(t, err)

	assert.Panics(t, func() { m.GetUnchecked(100) })
	assert.Panics(t, func() { m.SetUnchecked(-1) })
	assert.Panics(t, func() { m.GetAndSet(127) })
	assert.NotPanics(t, func() { m.FlipUnchecked(99) })
}
