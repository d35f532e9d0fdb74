package alloc

import (
	"errors"
	"fmt"

	"github.com/hupe1980/flatmap/internal/resource"
)

// Accounted charges every allocation of an inner allocator against a byte
// budget. An allocation that would exceed the budget fails with
// ErrOutOfMemory before the inner allocator is called.
type Accounted struct {
	inner Allocator
	rc    *resource.Controller
}

// NewAccounted wraps inner with a budget of limit bytes. A limit of 0 only
// tracks usage. A nil inner allocator means Heap.
func NewAccounted(inner Allocator, limit int64) *Accounted {
	if inner == nil {
		inner = Heap{}
	}
	return &Accounted{
		inner: inner,
		rc:    resource.NewController(resource.Config{MemoryLimitBytes: limit}),
	}
}

// Allocate implements Allocator.
func (a *Accounted) Allocate(size int) ([]byte, error) {
	return a.AllocateHint(size, HintKey)
}

// AllocateHint implements HintedAllocator.
func (a *Accounted) AllocateHint(size int, hint Hint) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if err := a.rc.AcquireMemory(int64(size)); err != nil {
		if errors.Is(err, resource.ErrMemoryLimitExceeded) {
			return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
				ErrOutOfMemory, size, a.rc.MemoryUsage(), a.rc.MemoryLimit())
		}
		return nil, err
	}

	block, err := AllocateHint(a.inner, size, hint)
	if err != nil {
		a.rc.ReleaseMemory(int64(size))
		return nil, err
	}
	return block, nil
}

// Free implements Allocator.
func (a *Accounted) Free(block []byte) error {
	if err := a.inner.Free(block); err != nil {
		return err
	}
	a.rc.ReleaseMemory(int64(len(block)))
	return nil
}

// InUse returns the bytes currently charged.
func (a *Accounted) InUse() int64 {
	return a.rc.MemoryUsage()
}

// Peak returns the highest number of bytes charged at once.
func (a *Accounted) Peak() int64 {
	return a.rc.PeakMemoryUsage()
}

// Limit returns the configured budget (0 if unlimited).
func (a *Accounted) Limit() int64 {
	return a.rc.MemoryLimit()
}
