package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/resource"
)

// words returns an immutable vector with n words in use.
func words(t *testing.T, n int) *bitvec.Immutable {
	t.Helper()
	ws := make([]uint64, n)
	for i := range ws {
		ws[i] = uint64(i + 1)
	}
	v, err := bitvec.ImmutableFromWords(ws, n)
	require.NoError(t, err)
	return v
}

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU(1024, nil)

	_, ok := c.Get("a")
	assert.False(t, ok)

	v := words(t, 4)
	c.Set("a", v)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Same(t, v, got)

	st := c.Stats()
	assert.Equal(t, int64(1), st.Hits)
	assert.Equal(t, int64(1), st.Misses)
	assert.Equal(t, 1, st.Entries)
	assert.Equal(t, int64(32), st.Bytes)
}

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU(64, nil) // two 4-word vectors

	c.Set("a", words(t, 4))
	c.Set("b", words(t, 4))
	_, _ = c.Get("a") // a is now most recent
	c.Set("c", words(t, 4))

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, int64(64), c.Size())
}

func TestLRU_Replace(t *testing.T) {
	c := NewLRU(1024, nil)
	c.Set("a", words(t, 4))
	c.Set("a", words(t, 8))

	assert.Equal(t, int64(64), c.Size())
	assert.Equal(t, 1, c.Stats().Entries)
}

func TestLRU_TooLarge(t *testing.T) {
	c := NewLRU(16, nil)
	c.Set("big", words(t, 4))

	_, ok := c.Get("big")
	assert.False(t, ok)
	assert.Zero(t, c.Size())

	c.Set("nil", nil)
	assert.Zero(t, c.Stats().Entries)
}

func TestLRU_InvalidateAndPurge(t *testing.T) {
	c := NewLRU(1024, nil)
	c.Set("a", words(t, 1))
	c.Set("b", words(t, 1))

	c.Invalidate("a")
	c.Invalidate("missing")
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, int64(8), c.Size())

	c.Purge()
	assert.Zero(t, c.Size())
	assert.Zero(t, c.Stats().Entries)
}

func TestLRU_ResourceController(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 48})
	c := NewLRU(1024, rc)

	c.Set("a", words(t, 4))
	assert.Equal(t, int64(32), rc.MemoryUsage())

	// Does not fit into the remaining 16 bytes.
	c.Set("b", words(t, 4))
	_, ok := c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, int64(32), rc.MemoryUsage())

	c.Invalidate("a")
	assert.Zero(t, rc.MemoryUsage())
}

func TestShardedLRU(t *testing.T) {
	rc := resource.NewController(resource.Config{})
	c := NewShardedLRU(64*1024, rc)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				name := fmt.Sprintf("g%d/v%d", g, i)
				c.Set(name, words(t, 2))
				_, _ = c.Get(name)
			}
		}()
	}
	wg.Wait()

	st := c.Stats()
	assert.Equal(t, 400, st.Entries)
	assert.Equal(t, int64(400*16), st.Bytes)
	assert.Equal(t, int64(400), st.Hits)
	assert.Equal(t, c.Size(), rc.MemoryUsage())

	c.Invalidate("g0/v0")
	_, ok := c.Get("g0/v0")
	assert.False(t, ok)

	c.Purge()
	assert.Zero(t, c.Size())
	assert.Zero(t, rc.MemoryUsage())
}
