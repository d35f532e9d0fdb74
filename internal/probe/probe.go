package probe

import (
	"github.com/hupe1980/flatmap/internal/slot"
)

// Budget is the number of candidate slots examined per key.
const Budget = 4

// Slots is the read view of a slot table the sequencer walks.
type Slots interface {
	Len() int
	Status(i int) slot.Status
	Key(i int) uint32
}

// Keys compares a stored key handle with a probe key.
type Keys interface {
	Equals(h uint32, key []byte) bool
}

// Kind classifies a probe outcome.
type Kind uint8

const (
	// NotFound: lookup hit a vacancy or ran out of probes.
	NotFound Kind = iota
	// Found: lookup matched an occupied slot.
	Found
	// Existing: write-locate matched an occupied slot; reuse it in place.
	Existing
	// New: write-locate reached a vacancy; claim it.
	New
	// Overflow: write-locate ran out of probes.
	Overflow
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not-found"
	case Found:
		return "found"
	case Existing:
		return "existing"
	case New:
		return "new"
	case Overflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Result is a probe outcome. Index is meaningful for Found, Existing and New.
type Result struct {
	Kind  Kind
	Index int
	// Probes is how many slots were examined.
	Probes int
}

// Sequence returns the candidate indices (h + k) mod n for k in [0, Budget).
func Sequence(h uint64, n int) [Budget]int {
	var seq [Budget]int
	un := uint64(n)
	base := h % un
	for k := range seq {
		seq[k] = int((base + uint64(k)) % un)
	}
	return seq
}

// Lookup resolves key without mutating anything. Tombstones and occupied
// slots holding other keys are skipped; the first vacancy ends the search.
func Lookup(s Slots, keys Keys, h uint64, key []byte) Result {
	for k, i := range Sequence(h, s.Len()) {
		switch s.Status(i) {
		case slot.Tombstone:
			continue
		case slot.Occupied:
			if keys.Equals(s.Key(i), key) {
				return Result{Kind: Found, Index: i, Probes: k + 1}
			}
		default:
			return Result{Kind: NotFound, Index: -1, Probes: k + 1}
		}
	}
	return Result{Kind: NotFound, Index: -1, Probes: Budget}
}

// Locate resolves key to a write target: the occupied slot already holding
// it, or the first vacancy in its window. Tombstones are skipped and never
// claimed.
func Locate(s Slots, keys Keys, h uint64, key []byte) Result {
	for k, i := range Sequence(h, s.Len()) {
		switch s.Status(i) {
		case slot.Tombstone:
			continue
		case slot.Occupied:
			if keys.Equals(s.Key(i), key) {
				return Result{Kind: Existing, Index: i, Probes: k + 1}
			}
		default:
			return Result{Kind: New, Index: i, Probes: k + 1}
		}
	}
	return Result{Kind: Overflow, Index: -1, Probes: Budget}
}
