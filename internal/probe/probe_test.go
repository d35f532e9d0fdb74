package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/flatmap/internal/slot"
)

// fakeSlots is an in-memory Slots/Keys pair; handle h names keys[h].
type fakeSlots struct {
	status []slot.Status
	handle []uint32
	keys   map[uint32]string
}

func newFake(n int) *fakeSlots {
	return &fakeSlots{
		status: make([]slot.Status, n),
		handle: make([]uint32, n),
		keys:   map[uint32]string{},
	}
}

func (f *fakeSlots) Len() int                       { return len(f.status) }
func (f *fakeSlots) Status(i int) slot.Status       { return f.status[i] }
func (f *fakeSlots) Key(i int) uint32               { return f.handle[i] }
func (f *fakeSlots) Equals(h uint32, k []byte) bool { return f.keys[h] == string(k) }

func (f *fakeSlots) occupy(i int, key string) {
	h := uint32(len(f.keys) + 1)
	f.keys[h] = key
	f.status[i] = slot.Occupied
	f.handle[i] = h
}

func TestSequence(t *testing.T) {
	tests := []struct {
		h    uint64
		n    int
		want [Budget]int
	}{
		{0, 64, [Budget]int{0, 1, 2, 3}},
		{10, 64, [Budget]int{10, 11, 12, 13}},
		{62, 64, [Budget]int{62, 63, 0, 1}},
		{64 + 5, 64, [Budget]int{5, 6, 7, 8}},
		{^uint64(0), 64, [Budget]int{63, 0, 1, 2}},
		{1, 3, [Budget]int{1, 2, 0, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sequence(tt.h, tt.n), "Sequence(%d, %d)", tt.h, tt.n)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fakeSlots)
		key   string
		want  Result
	}{
		{
			name:  "empty table",
			setup: func(*fakeSlots) {},
			key:   "a",
			want:  Result{Kind: NotFound, Index: -1, Probes: 1},
		},
		{
			name:  "first candidate",
			setup: func(f *fakeSlots) { f.occupy(4, "a") },
			key:   "a",
			want:  Result{Kind: Found, Index: 4, Probes: 1},
		},
		{
			name: "skips other keys and tombstones",
			setup: func(f *fakeSlots) {
				f.occupy(4, "x")
				f.status[5] = slot.Tombstone
				f.occupy(6, "a")
			},
			key:  "a",
			want: Result{Kind: Found, Index: 6, Probes: 3},
		},
		{
			name: "vacancy stops the search",
			setup: func(f *fakeSlots) {
				f.occupy(4, "x")
				// slot 5 vacant
				f.occupy(6, "a")
			},
			key:  "a",
			want: Result{Kind: NotFound, Index: -1, Probes: 2},
		},
		{
			name: "exhausted",
			setup: func(f *fakeSlots) {
				f.occupy(4, "w")
				f.occupy(5, "x")
				f.status[6] = slot.Tombstone
				f.occupy(7, "y")
				f.occupy(8, "a") // outside the window
			},
			key:  "a",
			want: Result{Kind: NotFound, Index: -1, Probes: Budget},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake(64)
			tt.setup(f)
			assert.Equal(t, tt.want, Lookup(f, f, 4, []byte(tt.key)))
		})
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fakeSlots)
		key   string
		want  Result
	}{
		{
			name:  "claims first vacancy",
			setup: func(*fakeSlots) {},
			key:   "a",
			want:  Result{Kind: New, Index: 4, Probes: 1},
		},
		{
			name:  "reuses matching slot",
			setup: func(f *fakeSlots) { f.occupy(4, "x"); f.occupy(5, "a") },
			key:   "a",
			want:  Result{Kind: Existing, Index: 5, Probes: 2},
		},
		{
			name: "never claims a tombstone",
			setup: func(f *fakeSlots) {
				f.status[4] = slot.Tombstone
				f.status[5] = slot.Tombstone
			},
			key:  "a",
			want: Result{Kind: New, Index: 6, Probes: 3},
		},
		{
			name: "overflow when window is full",
			setup: func(f *fakeSlots) {
				f.occupy(4, "w")
				f.occupy(5, "x")
				f.occupy(6, "y")
				f.occupy(7, "z")
			},
			key:  "a",
			want: Result{Kind: Overflow, Index: -1, Probes: Budget},
		},
		{
			name: "overflow with tombstones in the window",
			setup: func(f *fakeSlots) {
				f.status[4] = slot.Tombstone
				f.occupy(5, "x")
				f.status[6] = slot.Tombstone
				f.occupy(7, "z")
			},
			key:  "a",
			want: Result{Kind: Overflow, Index: -1, Probes: Budget},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake(64)
			tt.setup(f)
			assert.Equal(t, tt.want, Locate(f, f, 4, []byte(tt.key)))
		})
	}
}

func TestLocate_WrapsAround(t *testing.T) {
	f := newFake(64)
	f.occupy(63, "x")

	got := Locate(f, f, 63, []byte("a"))
	assert.Equal(t, Result{Kind: New, Index: 0, Probes: 2}, got)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "overflow", Overflow.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
