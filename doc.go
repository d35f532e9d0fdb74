// Package flatmap provides a fixed-capacity, open-addressing map from byte
// strings to int32 values that lives in one contiguous memory block.
//
// A table is sized once at construction (never below MinCapacity slots) and
// never grows. Each key is hashed to a home slot and may only live in the
// ProbeBudget slots starting there; when all of them are taken by other keys
// the write fails with an *OverflowError instead of rehashing.
//
// # Quick Start
//
//	m, _ := flatmap.New(128)
//	defer m.Destroy()
//
//	_ = m.Set([]byte("alpha"), 1)
//	v, ok, _ := m.Lookup([]byte("alpha")) // 1, true
//
// # Locate, then Commit
//
// Writes are two-phase. BeginWrite resolves the key to a slot, claiming and
// storing a copy of the key if it is new, and returns a Cursor. Commit writes
// the value and closes the cursor; Abort closes it without writing.
//
//	c, err := m.BeginWrite([]byte("beta"))
//	if err != nil {
//	    return err // ErrOverflow, ErrOutOfMemory, ErrReentrant
//	}
//	m.Commit(c, 2)
//
// While a cursor is open every other access fails with ErrReentrant. Using a
// cursor twice, or on the wrong table, panics.
//
// # Memory
//
// The slot block and every key buffer come from an alloc.Allocator. The
// default is the Go heap; alloc.Mmap keeps the table off-heap, and
// WithMemoryLimit bounds the bytes a table may hold.
//
//	m, _ := flatmap.New(1<<16,
//	    flatmap.WithAllocator(alloc.NewMmap()),
//	    flatmap.WithMemoryLimit(8<<20),
//	)
//
// Destroy releases all of it exactly once.
//
// # Deletion
//
// Delete leaves a tombstone. Lookups probe past tombstones and inserts never
// reclaim them, so a table's usable capacity only shrinks.
package flatmap
