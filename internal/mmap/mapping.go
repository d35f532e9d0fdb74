package mmap

import (
	"os"
	"sync/atomic"
)

// Mapping represents an anonymous read-write memory mapping.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	size   int
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// MapAnon creates a private anonymous mapping of at least size bytes.
// The length is rounded up to the OS page size; Bytes returns exactly size
// bytes. Freshly mapped memory is zero-filled by the kernel.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	length := PageAlign(size)
	data, unmapFunc, err := osMapAnon(length)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		size:  size,
		unmap: unmapFunc,
	}, nil
}

// PageAlign rounds n up to a multiple of the OS page size.
func PageAlign(n int) int {
	page := os.Getpagesize()
	return (n + page - 1) / page * page
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Bytes returns the mapped memory, trimmed to the requested size.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data[:m.size:m.size]
}

// Size returns the requested size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}

// Reserved returns the page-aligned length actually mapped.
func (m *Mapping) Reserved() int {
	return len(m.data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}
