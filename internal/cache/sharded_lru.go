package cache

import (
	"hash/maphash"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/resource"
)

const numShards = 64

// ShardedLRU is a sharded LRU cache for high-concurrency workloads.
// It distributes entries across 64 shards to reduce lock contention.
type ShardedLRU struct {
	shards [numShards]*LRU
	seed   maphash.Seed
}

var _ VectorCache = (*ShardedLRU)(nil)

// NewShardedLRU creates a new sharded LRU cache.
// The capacity is divided evenly across all shards.
func NewShardedLRU(capacity int64, rc *resource.Controller) *ShardedLRU {
	shardCapacity := max(capacity/numShards, 1)

	s := &ShardedLRU{
		seed: maphash.MakeSeed(),
	}
	for i := range numShards {
		s.shards[i] = NewLRU(shardCapacity, rc)
	}
	return s
}

func (s *ShardedLRU) shard(name string) *LRU {
	return s.shards[maphash.String(s.seed, name)%numShards]
}

// Get returns a cached vector.
func (s *ShardedLRU) Get(name string) (*bitvec.Immutable, bool) {
	return s.shard(name).Get(name)
}

// Set caches a vector.
func (s *ShardedLRU) Set(name string, v *bitvec.Immutable) {
	s.shard(name).Set(name, v)
}

// Invalidate removes the entry for name.
func (s *ShardedLRU) Invalidate(name string) {
	s.shard(name).Invalidate(name)
}

// Purge removes all entries from every shard.
func (s *ShardedLRU) Purge() {
	for _, sh := range s.shards {
		sh.Purge()
	}
}

// Stats returns counters aggregated over all shards.
func (s *ShardedLRU) Stats() Stats {
	var total Stats
	for _, sh := range s.shards {
		st := sh.Stats()
		total.Hits += st.Hits
		total.Misses += st.Misses
		total.Entries += st.Entries
		total.Bytes += st.Bytes
	}
	return total
}

// Size returns the total size across all shards.
func (s *ShardedLRU) Size() int64 {
	var total int64
	for _, sh := range s.shards {
		total += sh.Size()
	}
	return total
}
