package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that an allocation could not be satisfied.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrUnknownBlock indicates an attempt to free a block this allocator did not
	// hand out, or one that was already freed.
	ErrUnknownBlock = errors.New("alloc: unknown or already freed block")

	// ErrInvalidSize indicates a non-positive allocation request.
	ErrInvalidSize = errors.New("alloc: size must be positive")
)
