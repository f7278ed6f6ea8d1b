package cache

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/resource"
)

// LRU implements a simple byte-bounded LRU VectorCache.
type LRU struct {
	mu        sync.Mutex
	capacity  int64
	size      int64
	items     map[string]*list.Element
	evictList *list.List
	rc        *resource.Controller

	hits   atomic.Int64
	misses atomic.Int64
}

var _ VectorCache = (*LRU)(nil)

type entry struct {
	name  string
	value *bitvec.Immutable
	size  int64
}

// NewLRU creates a new LRU cache with the given capacity in bytes.
// If rc is provided, it will be used to track memory usage.
func NewLRU(capacity int64, rc *resource.Controller) *LRU {
	return &LRU{
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
		rc:        rc,
	}
}

// Get returns a cached vector.
func (c *LRU) Get(name string) (*bitvec.Immutable, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[name]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(el)
		return el.Value.(*entry).value, true
	}
	c.misses.Add(1)
	return nil, false
}

// Set caches a vector. Vectors larger than the capacity are not cached, and
// neither are vectors the resource controller has no room for.
func (c *LRU) Set(name string, v *bitvec.Immutable) {
	if v == nil {
		return
	}
	itemSize := sizeOf(v)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[name]; ok {
		c.removeElement(el)
	}
	if itemSize > c.capacity {
		return
	}

	// Evict locally first so released memory is back in the controller
	// before we reserve.
	for c.size+itemSize > c.capacity {
		el := c.evictList.Back()
		if el == nil {
			break
		}
		c.removeElement(el)
	}

	if err := c.rc.AcquireMemory(itemSize); err != nil {
		return
	}

	el := c.evictList.PushFront(&entry{name: name, value: v, size: itemSize})
	c.items[name] = el
	c.size += itemSize
}

// Invalidate removes the entry for name.
func (c *LRU) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[name]; ok {
		c.removeElement(el)
	}
}

// Purge removes all entries.
func (c *LRU) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for el := c.evictList.Back(); el != nil; el = c.evictList.Back() {
		c.removeElement(el)
	}
}

// Stats returns hit/miss counters and the current footprint.
func (c *LRU) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: len(c.items),
		Bytes:   c.size,
	}
}

// Size returns the current size of the cache in bytes.
func (c *LRU) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func (c *LRU) removeElement(el *list.Element) {
	c.evictList.Remove(el)
	kv := el.Value.(*entry)
	delete(c.items, kv.name)
	c.size -= kv.size
	c.rc.ReleaseMemory(kv.size)
}
