package alloc

import "unsafe"

// Allocator is the memory collaborator a table routes every allocation
// through: the slot block and each owned key buffer.
//
// Implementations:
//   - Heap: Go heap memory, word or cache-line aligned
//   - Mmap: off-heap anonymous mappings
//   - Accounted: charges another allocator against a byte budget
//   - Counting: records every allocate/free pair for auditing
type Allocator interface {
	// Allocate returns a zeroed block of exactly size bytes whose first byte
	// is at least 8-byte aligned. Failures match ErrOutOfMemory.
	Allocate(size int) ([]byte, error)

	// Free releases a block previously returned by Allocate.
	Free(block []byte) error
}

// Hint lets callers tell an allocator what a block is for. Allocators that
// do not care ignore it.
type Hint uint8

const (
	// HintKey marks a small owned key buffer.
	HintKey Hint = iota
	// HintBlock marks a slot block: large, long lived, randomly accessed.
	HintBlock
)

// HintedAllocator is implemented by allocators that place blocks differently
// depending on their purpose.
type HintedAllocator interface {
	Allocator
	AllocateHint(size int, hint Hint) ([]byte, error)
}

// AllocateHint calls a.AllocateHint when a supports hints and a.Allocate
// otherwise.
func AllocateHint(a Allocator, size int, hint Hint) ([]byte, error) {
	if h, ok := a.(HintedAllocator); ok {
		return h.AllocateHint(size, hint)
	}
	return a.Allocate(size)
}

// blockID identifies a block by the address of its first byte.
type blockID uintptr

func idOf(block []byte) blockID {
	if len(block) == 0 {
		return 0
	}
	return blockID(uintptr(unsafe.Pointer(&block[0]))) //nolint:gosec // identity only, never dereferenced
}
