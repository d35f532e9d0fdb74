package flatmap

import "iter"

// Range calls fn for every stored key in slot order until fn returns false.
// key aliases table memory and is only valid during the call. fn may call
// Lookup and Contains; BeginWrite, Set, Delete and Destroy fail with
// ErrReentrant until Range returns.
func (t *Table) Range(fn func(key []byte, value int32) bool) error {
	if err := t.readable(); err != nil {
		return err
	}

	t.iterating++
	defer func() { t.iterating-- }()

	it := t.Occupancy().Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if !fn(t.keys.Bytes(t.slots.Key(i)), t.slots.Value(i)) {
			return nil
		}
	}
	return nil
}

// All returns an iterator over stored keys and values in slot order. It
// yields nothing if the table is destroyed or a write cursor is open. Keys
// alias table memory and are only valid until the next iteration step.
func (t *Table) All() iter.Seq2[[]byte, int32] {
	return func(yield func([]byte, int32) bool) {
		_ = t.Range(yield)
	}
}
