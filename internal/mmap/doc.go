// Package mmap provides anonymous off-heap memory regions.
//
// # Overview
//
// MapAnon() creates read-write anonymous mappings for off-heap memory
// allocation. Memory obtained this way lives outside the Go garbage
// collector's control, which is what lets a record store hold millions
// of small binary records without adding GC scan pressure.
//
// # Usage
//
//	m, err := mmap.MapAnon(size)
//	if err != nil { ... }
//	defer m.Close()
//
//	// Direct access to the off-heap region
//	data := m.Bytes()
//
//	// Provide kernel hints for access patterns
//	m.Advise(mmap.AccessRandom)
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): Uses mmap(2) with MAP_ANON, madvise(2) for hints
//   - Windows: Uses VirtualAlloc/VirtualFree (madvise is a no-op)
//
// # Thread Safety
//
// Mapping is safe for concurrent read access. The Close() method is
// idempotent and protected by atomic operations. However, callers must
// ensure no goroutines access Bytes() after Close() returns.
package mmap
