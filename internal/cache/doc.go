// Package cache provides LRU caching for decoded vectors.
//
// Entries are *bitvec.Immutable values keyed by blob name and charged by the
// size of their words in use. Immutables never change after construction, so
// a cached value can be handed to any number of readers.
//
// The ShardedLRU spreads keys over 64 independently locked LRU shards to
// reduce contention when many goroutines load vectors at once. Both caches
// can charge their footprint to a resource.Controller.
package cache
