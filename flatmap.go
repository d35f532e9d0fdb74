package flatmap

import (
	"fmt"
	"time"

	"github.com/hupe1980/flatmap/alloc"
	"github.com/hupe1980/flatmap/internal/conv"
	"github.com/hupe1980/flatmap/internal/keystore"
	"github.com/hupe1980/flatmap/internal/probe"
	"github.com/hupe1980/flatmap/internal/slot"
)

// MinCapacity is the smallest slot count a table is built with.
const MinCapacity = slot.MinCapacity

// ProbeBudget is the number of slots examined per key.
const ProbeBudget = probe.Budget

// Table is a fixed-capacity byte-string to int32 map stored in one
// contiguous block. Writes go through BeginWrite and Commit; at most one
// write cursor is open at a time.
//
// Table is not safe for concurrent use and must not be copied.
type Table struct {
	noCopy noCopy

	name    string
	slots   *slot.Table
	keys    *keystore.Store
	alloc   alloc.Allocator
	hash    Hasher
	logger  *Logger
	metrics MetricsCollector

	cur       *Cursor
	gen       uint64
	iterating int
	destroyed bool
}

// New allocates a table with max(capacityHint, MinCapacity) slots. The
// capacity never changes afterwards.
func New(capacityHint int, optFns ...Option) (*Table, error) {
	o := applyOptions(optFns)

	n := slot.Capacity(capacityHint)
	if _, err := conv.IntToUint32(n); err != nil {
		return nil, fmt.Errorf("flatmap: capacity: %w", err)
	}
	layout := slot.NewLayout(n)
	logger := o.logger.WithCapacity(n)

	block, err := alloc.AllocateHint(o.allocator, layout.Size, alloc.HintBlock)
	if err != nil {
		err = fmt.Errorf("flatmap: allocate %d-slot block: %w", n, err)
		o.logger.LogCreate(n, layout.Size, err)
		return nil, err
	}

	slots, err := slot.New(block, layout)
	if err != nil {
		_ = o.allocator.Free(block)
		err = fmt.Errorf("flatmap: %w", err)
		o.logger.LogCreate(n, layout.Size, err)
		return nil, err
	}

	o.logger.LogCreate(n, layout.Size, nil)

	return &Table{
		name:    o.name,
		slots:   slots,
		keys:    keystore.New(o.allocator),
		alloc:   o.allocator,
		hash:    o.hasher,
		logger:  logger,
		metrics: o.metricsCollector,
	}, nil
}

// Pair is one key/value entry for NewFromPairs.
type Pair struct {
	Key   []byte
	Value int32
}

// NewFromPairs builds a table and stores pairs in order; a repeated key keeps
// its last value. If any pair cannot be stored the table is destroyed and the
// error returned.
func NewFromPairs(capacityHint int, pairs []Pair, optFns ...Option) (*Table, error) {
	t, err := New(capacityHint, optFns...)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := t.Set(p.Key, p.Value); err != nil {
			_ = t.Destroy()
			return nil, err
		}
	}
	return t, nil
}

// Name returns the name given by WithName.
func (t *Table) Name() string {
	return t.name
}

// Cap returns the fixed slot count.
func (t *Table) Cap() int {
	return t.slots.Len()
}

// Len returns the number of keys currently stored.
func (t *Table) Len() int {
	return t.keys.Live()
}

// readable reports why the table cannot be read right now.
func (t *Table) readable() error {
	switch {
	case t.destroyed:
		return ErrDestroyed
	case t.cur != nil:
		return ErrReentrant
	}
	return nil
}

// writable reports why the table cannot be mutated right now.
func (t *Table) writable() error {
	if err := t.readable(); err != nil {
		return err
	}
	if t.iterating > 0 {
		return fmt.Errorf("%w: mutation during Range", ErrReentrant)
	}
	return nil
}

func (t *Table) lookup(key []byte) probe.Result {
	r := probe.Lookup(t.slots, t.keys, t.hash(key), key)
	t.metrics.RecordProbes(r.Probes)
	return r
}

// Lookup returns the value stored under key. A missing key yields (0, false,
// nil). Lookup fails with ErrReentrant while a write cursor is open.
func (t *Table) Lookup(key []byte) (int32, bool, error) {
	start := time.Now()

	if err := t.readable(); err != nil {
		t.metrics.RecordLookup(time.Since(start), false, err)
		return 0, false, err
	}

	r := t.lookup(key)
	if r.Kind != probe.Found {
		t.metrics.RecordLookup(time.Since(start), false, nil)
		return 0, false, nil
	}
	v := t.slots.Value(r.Index)
	t.metrics.RecordLookup(time.Since(start), true, nil)
	return v, true, nil
}

// Contains reports whether key currently occupies a slot.
func (t *Table) Contains(key []byte) (bool, error) {
	_, ok, err := t.Lookup(key)
	return ok, err
}

// BeginWrite opens a write cursor on the slot for key. If key is absent a
// vacant slot in its probe window is claimed and an owned copy of key is
// stored there. The cursor must be passed to Commit or Abort before the
// table is used again.
//
// When every candidate slot holds another key or a tombstone, BeginWrite
// returns an *OverflowError and the table is unchanged.
func (t *Table) BeginWrite(key []byte) (*Cursor, error) {
	start := time.Now()

	c, err := t.beginWrite(key)
	t.metrics.RecordLocate(time.Since(start), c != nil && c.claimed, err)
	return c, err
}

func (t *Table) beginWrite(key []byte) (*Cursor, error) {
	if err := t.writable(); err != nil {
		return nil, err
	}

	r := probe.Locate(t.slots, t.keys, t.hash(key), key)
	t.metrics.RecordProbes(r.Probes)

	switch r.Kind {
	case probe.Existing:
		return t.open(r.Index, false), nil
	case probe.New:
		h, err := t.keys.Acquire(key)
		if err != nil {
			return nil, fmt.Errorf("flatmap: store key: %w", err)
		}
		t.slots.SetStatus(r.Index, slot.Occupied)
		t.slots.SetKey(r.Index, h)
		return t.open(r.Index, true), nil
	default:
		t.logger.LogOverflow(key, r.Probes)
		return nil, &OverflowError{
			Key:      append([]byte(nil), key...),
			Probes:   r.Probes,
			Capacity: t.slots.Len(),
		}
	}
}

// Commit stores value in the cursor's slot and closes the cursor. Passing a
// cursor that is not the table's open cursor panics.
func (t *Table) Commit(c *Cursor, value int32) {
	t.close(c)
	t.slots.SetValue(c.index, value)
}

// Abort closes the cursor without writing. A slot claimed by the cursor
// stays occupied with value 0. Passing a cursor that is not the table's open
// cursor panics.
func (t *Table) Abort(c *Cursor) {
	t.close(c)
}

// Set stores value under key, overwriting any previous value.
func (t *Table) Set(key []byte, value int32) error {
	c, err := t.BeginWrite(key)
	if err != nil {
		return err
	}
	t.Commit(c, value)
	return nil
}

// Delete removes key and reports whether it was present. The freed slot
// becomes a tombstone: lookups probe past it and inserts never reclaim it,
// so deleting does not restore capacity.
func (t *Table) Delete(key []byte) (bool, error) {
	start := time.Now()

	if err := t.writable(); err != nil {
		t.metrics.RecordDelete(time.Since(start), err)
		return false, err
	}

	r := t.lookup(key)
	if r.Kind != probe.Found {
		t.metrics.RecordDelete(time.Since(start), nil)
		return false, nil
	}

	h := t.slots.Key(r.Index)
	t.slots.SetStatus(r.Index, slot.Tombstone)
	t.slots.SetKey(r.Index, slot.NoKey)
	t.slots.SetValue(r.Index, 0)

	var err error
	if rerr := t.keys.Release(h); rerr != nil {
		err = fmt.Errorf("flatmap: delete: %w", rerr)
		t.logger.LogDelete(key, err)
	}
	t.metrics.RecordDelete(time.Since(start), err)
	return true, err
}
