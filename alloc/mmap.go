package alloc

import (
	"fmt"

	"github.com/hupe1980/flatmap/internal/mmap"
)

// Mmap allocates every block as its own anonymous private mapping. Memory is
// page granular, so it suits slot blocks; pair it with small tables or accept
// one page per key buffer.
//
// Mmap is not safe for concurrent use.
type Mmap struct {
	live map[blockID]*mmap.Mapping
}

// NewMmap returns an empty Mmap allocator.
func NewMmap() *Mmap {
	return &Mmap{live: make(map[blockID]*mmap.Mapping)}
}

// Allocate implements Allocator.
func (m *Mmap) Allocate(size int) ([]byte, error) {
	return m.AllocateHint(size, HintKey)
}

// AllocateHint implements HintedAllocator. Slot blocks are advised for random
// access.
func (m *Mmap) AllocateHint(size int, hint Hint) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	mapping, err := mmap.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	if hint == HintBlock {
		_ = mapping.Advise(mmap.AccessRandom)
	}

	block := mapping.Bytes()
	if m.live == nil {
		m.live = make(map[blockID]*mmap.Mapping)
	}
	m.live[idOf(block)] = mapping
	return block, nil
}

// Free implements Allocator.
func (m *Mmap) Free(block []byte) error {
	id := idOf(block)
	mapping, ok := m.live[id]
	if !ok {
		return ErrUnknownBlock
	}
	delete(m.live, id)
	return mapping.Close()
}

// Live returns the number of mappings not yet freed.
func (m *Mmap) Live() int {
	return len(m.live)
}
