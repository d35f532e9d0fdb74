package alloc

// Counting records every Allocate/Free pair of an inner allocator. Freeing a
// block it never handed out, or freeing twice, returns ErrUnknownBlock
// without touching the inner allocator.
//
// Counting is not safe for concurrent use.
type Counting struct {
	inner Allocator
	live  map[blockID]int

	stats CountingStats
}

// CountingStats is a snapshot of Counting state.
type CountingStats struct {
	Allocs     int64 // successful Allocate calls
	Frees      int64 // successful Free calls
	Failures   int64 // failed Allocate calls
	LiveBlocks int64 // Allocs - Frees
	LiveBytes  int64 // bytes not yet freed
}

// NewCounting wraps inner. A nil inner allocator means Heap.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Heap{}
	}
	return &Counting{
		inner: inner,
		live:  make(map[blockID]int),
	}
}

// Allocate implements Allocator.
func (c *Counting) Allocate(size int) ([]byte, error) {
	return c.AllocateHint(size, HintKey)
}

// AllocateHint implements HintedAllocator.
func (c *Counting) AllocateHint(size int, hint Hint) ([]byte, error) {
	block, err := AllocateHint(c.inner, size, hint)
	if err != nil {
		c.stats.Failures++
		return nil, err
	}
	c.live[idOf(block)] = len(block)
	c.stats.Allocs++
	c.stats.LiveBlocks++
	c.stats.LiveBytes += int64(len(block))
	return block, nil
}

// Free implements Allocator.
func (c *Counting) Free(block []byte) error {
	id := idOf(block)
	size, ok := c.live[id]
	if !ok {
		return ErrUnknownBlock
	}
	if err := c.inner.Free(block); err != nil {
		return err
	}
	delete(c.live, id)
	c.stats.Frees++
	c.stats.LiveBlocks--
	c.stats.LiveBytes -= int64(size)
	return nil
}

// Stats returns a snapshot of the counters.
func (c *Counting) Stats() CountingStats {
	return c.stats
}
