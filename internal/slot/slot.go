package slot

import (
	"errors"
	"fmt"

	"github.com/hupe1980/flatmap/internal/mem"
)

// MinCapacity is the smallest number of slots a table is created with.
const MinCapacity = 64

// Status is the state of one slot.
type Status uint8

const (
	Vacant    Status = 0
	Occupied  Status = 1
	Tombstone Status = 2
)

func (s Status) String() string {
	switch s {
	case Vacant:
		return "vacant"
	case Occupied:
		return "occupied"
	case Tombstone:
		return "tombstone"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// NoKey is the key handle stored in slots that hold no key.
const NoKey uint32 = 0

var (
	// ErrBlockTooSmall is returned when a block cannot hold the layout.
	ErrBlockTooSmall = errors.New("slot: block smaller than layout")
	// ErrMisaligned is returned when a block does not start on an 8-byte boundary.
	ErrMisaligned = errors.New("slot: block not 8-byte aligned")
)

// Layout describes where the three regions live inside one block.
//
//	┌──────────────────┬─────────┬──────────────────┬──────────────────┬─────────┐
//	│ status [N]uint8  │ pad → 8 │ value [N]int32   │ key [N]uint32    │ pad → 8 │
//	└──────────────────┴─────────┴──────────────────┴──────────────────┴─────────┘
type Layout struct {
	Capacity  int
	ValuesOff int
	KeysOff   int
	Size      int
}

// Capacity returns the slot count for a capacity hint.
func Capacity(hint int) int {
	if hint < MinCapacity {
		return MinCapacity
	}
	return hint
}

// NewLayout computes the block layout for n slots. n must be positive.
func NewLayout(n int) Layout {
	valuesOff := mem.Align8(n)
	keysOff := valuesOff + 4*n
	return Layout{
		Capacity:  n,
		ValuesOff: valuesOff,
		KeysOff:   keysOff,
		Size:      mem.Align8(keysOff + 4*n),
	}
}

// Table addresses the regions of one block by slot index. It does not own
// the block; whoever allocated it frees it.
type Table struct {
	layout Layout
	block  []byte
	status []Status
	values []int32
	keys   []uint32
}

// New views block as a slot table for layout and resets every slot to
// Vacant with no key.
func New(block []byte, layout Layout) (*Table, error) {
	if len(block) < layout.Size {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrBlockTooSmall, len(block), layout.Size)
	}
	if !mem.IsAligned(block, mem.WordAlign) {
		return nil, ErrMisaligned
	}
	if layout.Capacity <= 0 {
		return nil, fmt.Errorf("slot: invalid capacity %d", layout.Capacity)
	}

	clear(block[:layout.Size])

	n := layout.Capacity
	return &Table{
		layout: layout,
		block:  block,
		status: statusView(block[:n]),
		values: mem.Int32s(block[layout.ValuesOff : layout.ValuesOff+4*n]),
		keys:   mem.Uint32s(block[layout.KeysOff : layout.KeysOff+4*n]),
	}, nil
}

// Len returns the number of slots.
func (t *Table) Len() int {
	return t.layout.Capacity
}

// Layout returns the block layout.
func (t *Table) Layout() Layout {
	return t.layout
}

// Block returns the backing block as it was handed to New.
func (t *Table) Block() []byte {
	return t.block
}

func (t *Table) check(i int) {
	if uint(i) >= uint(t.layout.Capacity) {
		panic(fmt.Sprintf("slot: index %d out of range [0,%d)", i, t.layout.Capacity))
	}
}

// Status returns the status of slot i.
func (t *Table) Status(i int) Status {
	t.check(i)
	return t.status[i]
}

// SetStatus sets the status of slot i.
func (t *Table) SetStatus(i int, s Status) {
	t.check(i)
	t.status[i] = s
}

// Value returns the value word of slot i.
func (t *Table) Value(i int) int32 {
	t.check(i)
	return t.values[i]
}

// SetValue sets the value word of slot i.
func (t *Table) SetValue(i int, v int32) {
	t.check(i)
	t.values[i] = v
}

// Key returns the key handle of slot i (NoKey if absent).
func (t *Table) Key(i int) uint32 {
	t.check(i)
	return t.keys[i]
}

// SetKey sets the key handle of slot i.
func (t *Table) SetKey(i int, h uint32) {
	t.check(i)
	t.keys[i] = h
}

// Counts tallies slots by status.
type Counts struct {
	Vacant    int
	Occupied  int
	Tombstone int
}

// Counts scans the status region.
func (t *Table) Counts() Counts {
	var c Counts
	for _, s := range t.status {
		switch s {
		case Occupied:
			c.Occupied++
		case Tombstone:
			c.Tombstone++
		default:
			c.Vacant++
		}
	}
	return c
}
