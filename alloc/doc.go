// Package alloc defines the memory collaborator used by flatmap tables.
//
// # Overview
//
// A table never allocates on its own. The slot block and every owned key
// buffer are obtained through an Allocator, so a host that keeps its own
// memory accounting sees every byte the table holds.
//
// # Implementations
//
// Heap: Go heap memory (default)
//
//   - Slot blocks aligned to a cache line, key buffers to a word
//   - Free is a no-op; the garbage collector reclaims memory
//
// Mmap: off-heap anonymous mappings
//
//   - One private mapping per block, page granular
//   - Slot blocks advised for random access
//   - Free unmaps immediately
//
// Accounted: budgeted wrapper
//
//   - Charges each allocation against a byte limit before delegating
//   - Exceeding the limit fails with ErrOutOfMemory
//
// Counting: auditing wrapper
//
//   - Counts allocations, frees and live bytes
//   - Detects frees of unknown or already freed blocks
//
// # Usage Example
//
//	budget := alloc.NewAccounted(alloc.NewMmap(), 1<<20)
//	audit := alloc.NewCounting(budget)
//
//	t, err := flatmap.New(256, flatmap.WithAllocator(audit))
//	if err != nil {
//	    return err
//	}
//	defer t.Destroy()
//
// Wrappers compose in any order; hints pass through so the innermost
// allocator still learns which requests are slot blocks.
//
// # Thread Safety
//
// Mmap and Counting are not safe for concurrent use. Accounted is as safe as
// its inner allocator. Heap is stateless.
package alloc
