package flatmap

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/flatmap/internal/probe"
	"github.com/hupe1980/flatmap/internal/slot"
)

// Stats is a point-in-time summary of a table.
type Stats struct {
	Name       string
	Capacity   int
	Occupied   int
	Tombstones int
	Vacant     int
	BlockBytes int
	LiveKeys   int
	KeyBytes   int64 // terminators included
}

// LoadFactor returns the fraction of slots that are no longer vacant.
func (s Stats) LoadFactor() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Occupied+s.Tombstones) / float64(s.Capacity)
}

// Stats returns slot and key-buffer counts. A destroyed table reports its
// capacity only.
func (t *Table) Stats() Stats {
	s := Stats{
		Name:     t.name,
		Capacity: t.slots.Len(),
	}
	if t.destroyed {
		return s
	}
	c := t.slots.Counts()
	s.Occupied = c.Occupied
	s.Tombstones = c.Tombstone
	s.Vacant = c.Vacant
	s.BlockBytes = t.slots.Layout().Size
	s.LiveKeys = t.keys.Live()
	s.KeyBytes = t.keys.LiveBytes()
	return s
}

// Occupancy returns the indices of occupied slots. The bitmap is a copy.
func (t *Table) Occupancy() *roaring.Bitmap {
	bm := roaring.New()
	if t.destroyed {
		return bm
	}
	for i := range t.slots.Len() {
		if t.slots.Status(i) == slot.Occupied {
			bm.Add(uint32(i)) //nolint:gosec // capacity fits uint32, checked in New
		}
	}
	return bm
}

// Verify checks the table's structural invariants and returns every
// violation found, each wrapping ErrCorrupt:
//   - occupied slots hold a live, unshared key handle
//   - vacant and tombstone slots hold no key and value 0
//   - the number of live key buffers equals the number of occupied slots
//   - every stored key is found by lookup at its own slot
func (t *Table) Verify() error {
	if t.destroyed {
		return ErrDestroyed
	}

	var errs []error
	handles := roaring.New()
	occupied := 0

	for i := range t.slots.Len() {
		h := t.slots.Key(i)
		switch st := t.slots.Status(i); st {
		case slot.Occupied:
			occupied++
			if !t.keys.Valid(h) {
				errs = append(errs, corrupt("slot %d: occupied with dead handle %d", i, h))
				continue
			}
			if !handles.CheckedAdd(h) {
				errs = append(errs, corrupt("slot %d: handle %d shared with another slot", i, h))
			}
			key := t.keys.Bytes(h)
			if r := probe.Lookup(t.slots, t.keys, t.hash(key), key); r.Kind != probe.Found || r.Index != i {
				errs = append(errs, corrupt("slot %d: key %q unreachable by lookup (%s at %d)", i, key, r.Kind, r.Index))
			}
		case slot.Vacant, slot.Tombstone:
			if h != slot.NoKey {
				errs = append(errs, corrupt("slot %d: %s slot holds handle %d", i, st, h))
			}
			if v := t.slots.Value(i); v != 0 {
				errs = append(errs, corrupt("slot %d: %s slot holds value %d", i, st, v))
			}
		default:
			errs = append(errs, corrupt("slot %d: unknown status %d", i, uint8(st)))
		}
	}

	if live := t.keys.Live(); live != occupied {
		errs = append(errs, corrupt("%d live key buffers for %d occupied slots", live, occupied))
	}
	return errors.Join(errs...)
}
