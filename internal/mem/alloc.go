package mem

import (
	"unsafe"
)

// CacheLine is the byte alignment used for slot blocks (one cache line).
const CacheLine = 64

// WordAlign is the minimum alignment every allocation honours.
const WordAlign = 8

// AllocAligned allocates a zeroed byte slice of the given size whose first
// byte sits at an address divisible by align. align must be a power of two.
//
// Note: This function allocates up to align-1 extra bytes to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	if align < WordAlign {
		align = WordAlign
	}

	totalSize := size + align
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	mask := uintptr(align - 1)
	offset := (uintptr(align) - (addr & mask)) & mask

	// Cap at size so appends cannot spill into the padding.
	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// IsAligned reports whether the first byte of b is aligned to align.
func IsAligned(b []byte, align int) bool {
	if len(b) == 0 {
		return true
	}
	addr := uintptr(unsafe.Pointer(&b[0])) //nolint:gosec // address inspection only
	return addr&uintptr(align-1) == 0
}

// Align8 rounds n up to the next multiple of 8.
func Align8(n int) int {
	return (n + 7) &^ 7
}

// Int32s views b as a slice of int32. b must be 4-byte aligned and its length
// a multiple of 4.
func Int32s(b []byte) []int32 {
	if len(b) == 0 {
		return nil
	}
	ptr := unsafe.Pointer(&b[0])                 //nolint:gosec // unsafe is required for typed views
	return unsafe.Slice((*int32)(ptr), len(b)/4) //nolint:gosec // unsafe is required for typed views
}

// Uint32s views b as a slice of uint32. b must be 4-byte aligned and its length
// a multiple of 4.
func Uint32s(b []byte) []uint32 {
	if len(b) == 0 {
		return nil
	}
	ptr := unsafe.Pointer(&b[0])                  //nolint:gosec // unsafe is required for typed views
	return unsafe.Slice((*uint32)(ptr), len(b)/4) //nolint:gosec // unsafe is required for typed views
}
