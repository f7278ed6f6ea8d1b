package cache

import "github.com/hupe1980/bitvec"

// VectorCache is a byte-bounded cache of immutable vectors.
type VectorCache interface {
	// Get returns a cached vector. ok=false if missing.
	Get(name string) (v *bitvec.Immutable, ok bool)
	// Set caches a vector under name, replacing any previous entry.
	Set(name string, v *bitvec.Immutable)
	// Invalidate removes the entry for name, if any.
	Invalidate(name string)
	// Stats returns cache statistics.
	Stats() Stats
}

// Stats holds cache counters.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
	Bytes   int64
}

// sizeOf is the number of bytes a vector is charged for.
func sizeOf(v *bitvec.Immutable) int64 {
	return int64(v.NumWords()) * 8
}
