package flatmap

import (
	"errors"
	"fmt"

	"github.com/hupe1980/flatmap/alloc"
)

var (
	// ErrOutOfMemory is returned when the allocator cannot satisfy the slot
	// block or a key buffer. It is the same value as alloc.ErrOutOfMemory.
	ErrOutOfMemory = alloc.ErrOutOfMemory

	// ErrOverflow is matched by every *OverflowError.
	ErrOverflow = errors.New("flatmap: probe window exhausted")

	// ErrReentrant is returned when the table is accessed while a write
	// cursor is open, or mutated from inside Range.
	ErrReentrant = errors.New("flatmap: reentrant access")

	// ErrUnsupported is returned by whole-table copy and assignment.
	ErrUnsupported = errors.New("flatmap: operation not supported")

	// ErrDestroyed is returned by every operation after Destroy.
	ErrDestroyed = errors.New("flatmap: table destroyed")

	// ErrCorrupt is wrapped by every violation Verify reports.
	ErrCorrupt = errors.New("flatmap: invariant violated")
)

// OverflowError reports a key for which all probe candidates were taken by
// other keys or tombstones.
//
// errors.Is(err, ErrOverflow) holds for every OverflowError.
type OverflowError struct {
	Key      []byte
	Probes   int
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("flatmap: no free slot for key %q within %d probes (capacity %d)", e.Key, e.Probes, e.Capacity)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}
