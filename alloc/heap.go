package alloc

import (
	"github.com/hupe1980/flatmap/internal/mem"
)

// Heap allocates from the Go heap. Slot blocks are cache-line aligned, key
// buffers word aligned. Free is a no-op: the garbage collector reclaims the
// memory once the table drops its reference.
type Heap struct{}

// Allocate implements Allocator.
func (Heap) Allocate(size int) ([]byte, error) {
	return Heap{}.AllocateHint(size, HintKey)
}

// AllocateHint implements HintedAllocator.
func (Heap) AllocateHint(size int, hint Hint) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	align := mem.WordAlign
	if hint == HintBlock {
		align = mem.CacheLine
	}
	return mem.AllocAligned(size, align), nil
}

// Free implements Allocator.
func (Heap) Free([]byte) error {
	return nil
}
