package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, align := range []int{WordAlign, CacheLine} {
		for _, size := range sizes {
			buf := AllocAligned(size, align)
			assert.Len(t, buf, size)
			assert.Equal(t, size, cap(buf))

			addr := uintptr(unsafe.Pointer(&buf[0]))
			assert.Equal(t, uintptr(0), addr%uintptr(align), "Address %d should be aligned to %d for size %d", addr, align, size)
			assert.True(t, IsAligned(buf, align))

			for i, b := range buf {
				if b != 0 {
					t.Fatalf("byte %d not zeroed", i)
				}
			}
		}
	}

	assert.Nil(t, AllocAligned(0, CacheLine))
	assert.Nil(t, AllocAligned(-1, CacheLine))
}

func TestAllocAligned_SmallAlignmentRaised(t *testing.T) {
	buf := AllocAligned(3, 1)
	assert.True(t, IsAligned(buf, WordAlign))
}

func TestAlign8(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0}, {1, 8}, {7, 8}, {8, 8}, {9, 16}, {64, 64}, {65, 72},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Align8(tt.in), "Align8(%d)", tt.in)
	}
}

func TestTypedViews(t *testing.T) {
	buf := AllocAligned(16, WordAlign)

	ints := Int32s(buf)
	assert.Len(t, ints, 4)
	ints[1] = -7

	words := Uint32s(buf)
	assert.Len(t, words, 4)
	assert.Equal(t, uint32(0xFFFFFFF9), words[1])

	assert.Nil(t, Int32s(nil))
	assert.Nil(t, Uint32s(nil))
}

func BenchmarkAllocAligned(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAligned(size, CacheLine)
			}
		})
	}
}
