// Package mmap maps persisted vector frames into memory read-only.
//
//	m, err := mmap.Open("vectors/users.bvec")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	v, err := codec.Unmarshal(m.Bytes())
//
// Unix uses mmap(2) and madvise(2). Windows uses CreateFileMapping and
// MapViewOfFile; Advise is a no-op there.
//
// A Mapping is safe for concurrent reads. Close is idempotent, but callers
// must not use a slice returned by Bytes after Close.
package mmap
