package flatmap

import (
	"errors"
	"fmt"

	"github.com/hupe1980/flatmap/internal/slot"
)

// Destroy releases every key buffer and then the slot block. An open cursor
// is invalidated. Free errors are collected and returned, but teardown runs
// to completion; a second call returns ErrDestroyed.
func (t *Table) Destroy() error {
	if t.destroyed {
		return ErrDestroyed
	}
	if t.iterating > 0 {
		return fmt.Errorf("%w: destroy during Range", ErrReentrant)
	}
	t.destroyed = true
	t.cur = nil

	var errs []error
	released := 0
	for i := range t.slots.Len() {
		if t.slots.Status(i) != slot.Occupied {
			continue
		}
		h := t.slots.Key(i)
		t.slots.SetKey(i, slot.NoKey)
		if err := t.keys.Release(h); err != nil {
			errs = append(errs, err)
		}
		released++
	}

	block := t.slots.Block()
	blockBytes := t.slots.Layout().Size
	if err := t.alloc.Free(block); err != nil {
		errs = append(errs, fmt.Errorf("flatmap: free block: %w", err))
	}

	err := errors.Join(errs...)
	t.logger.LogDestroy(released, blockBytes, err)
	return err
}

// Clone is not supported: a table cannot be duplicated.
func (t *Table) Clone() (*Table, error) {
	return nil, fmt.Errorf("%w: clone", ErrUnsupported)
}

// Assign is not supported: a table cannot take over another's contents.
func (t *Table) Assign(*Table) error {
	return fmt.Errorf("%w: assign", ErrUnsupported)
}

// noCopy may be embedded into structs which must not be copied
// after the first use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
