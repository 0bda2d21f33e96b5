// Package mmap maps instance files read-only into memory.
//
// Instance documents are read once, front to back, by the decoder. Mapping
// them avoids a second copy of large point sets on the heap and lets the
// kernel read ahead; callers pass AccessSequential for that.
//
//	m, err := mmap.Open("points.json.zst")
//	if err != nil { ... }
//	defer m.Close()
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// On Unix the mapping uses mmap(2) and madvise(2). On Windows it uses
// CreateFileMapping/MapViewOfFile and Advise is a no-op.
//
// Close is idempotent. Slices returned by Bytes must not be used after
// Close returns.
package mmap
