package keystore

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/flatmap/alloc"
	"github.com/hupe1980/flatmap/internal/conv"
)

// Handle names one owned key buffer. The zero Handle is never issued.
type Handle = uint32

// Store owns the key buffers referenced by occupied slots. Buffers are
// obtained from the allocator and addressed by small integer handles so the
// slot block never stores a Go pointer.
//
// Store is not safe for concurrent use.
type Store struct {
	a    alloc.Allocator
	bufs [][]byte // bufs[h-1]; nil when h is free
	free []Handle

	liveBytes int64
	acquired  int64
	released  int64
}

// New returns an empty store that allocates through a.
func New(a alloc.Allocator) *Store {
	return &Store{a: a}
}

// Acquire copies key into a fresh buffer of len(key)+1 bytes terminated by a
// NUL byte and returns its handle.
func (s *Store) Acquire(key []byte) (Handle, error) {
	buf, err := alloc.AllocateHint(s.a, len(key)+1, alloc.HintKey)
	if err != nil {
		return 0, fmt.Errorf("keystore: acquire %d bytes: %w", len(key)+1, err)
	}
	n := copy(buf, key)
	buf[n] = 0

	var h Handle
	if last := len(s.free) - 1; last >= 0 {
		h = s.free[last]
		s.free = s.free[:last]
		s.bufs[h-1] = buf
	} else {
		next, err := conv.IntToUint32(len(s.bufs) + 1)
		if err != nil {
			_ = s.a.Free(buf)
			return 0, fmt.Errorf("keystore: handle space exhausted: %w", err)
		}
		s.bufs = append(s.bufs, buf)
		h = next
	}

	s.acquired++
	s.liveBytes += int64(len(buf))
	return h, nil
}

// Release frees the buffer behind h. Releasing a handle that is not live is a
// programming error and panics.
func (s *Store) Release(h Handle) error {
	buf := s.buf(h)
	s.bufs[h-1] = nil
	s.free = append(s.free, h)
	s.released++
	s.liveBytes -= int64(len(buf))

	if err := s.a.Free(buf); err != nil {
		return fmt.Errorf("keystore: release handle %d: %w", h, err)
	}
	return nil
}

// Equals reports whether the key behind h is exactly key.
func (s *Store) Equals(h Handle, key []byte) bool {
	return bytes.Equal(s.Bytes(h), key)
}

// Bytes returns the key behind h without its terminator. The slice aliases
// the owned buffer and is valid until h is released.
func (s *Store) Bytes(h Handle) []byte {
	buf := s.buf(h)
	return buf[: len(buf)-1 : len(buf)-1]
}

// Valid reports whether h names a live buffer.
func (s *Store) Valid(h Handle) bool {
	return h != 0 && int(h) <= len(s.bufs) && s.bufs[h-1] != nil
}

func (s *Store) buf(h Handle) []byte {
	if !s.Valid(h) {
		panic(fmt.Sprintf("keystore: handle %d is not live", h))
	}
	return s.bufs[h-1]
}

// Live returns the number of buffers currently owned.
func (s *Store) Live() int {
	return int(s.acquired - s.released)
}

// LiveBytes returns the bytes held by live buffers, terminators included.
func (s *Store) LiveBytes() int64 {
	return s.liveBytes
}

// Acquired returns the number of successful Acquire calls.
func (s *Store) Acquired() int64 {
	return s.acquired
}

// Released returns the number of Release calls.
func (s *Store) Released() int64 {
	return s.released
}
