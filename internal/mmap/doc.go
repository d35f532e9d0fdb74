// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// MapAnon creates read-write private mappings outside the Go garbage
// collector's control. The mapped pages are zero-filled by the kernel, which is
// exactly the initial state a slot block needs (every slot Vacant, every key
// handle absent).
//
// # Usage
//
//	m, err := mmap.MapAnon(4096)
//	if err != nil { ... }
//	defer m.Close()
//
//	block := m.Bytes()
//	_ = m.Advise(mmap.AccessRandom) // hash probes jump around
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE and madvise(2)
//   - Windows: VirtualAlloc/VirtualFree (Advise is a no-op)
//
// # Pointer Safety
//
// Mapped memory is invisible to the garbage collector. Never store Go pointers
// in it; store indexes or handles instead.
package mmap
