package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	rng := NewRNG(4711)

	keys := rng.Keys(500, 2, 6)

	assert.Len(t, keys, 500)
	seen := map[string]bool{}
	for _, k := range keys {
		assert.GreaterOrEqual(t, len(k), 2)
		assert.LessOrEqual(t, len(k), 6)
		assert.False(t, seen[string(k)], "duplicate %q", k)
		seen[string(k)] = true
	}
}

func TestKey_FixedLength(t *testing.T) {
	rng := NewRNG(1)
	assert.Len(t, rng.Key(5, 5), 5)
	assert.Empty(t, rng.Key(0, 0))
}

func TestBinaryKeys(t *testing.T) {
	rng := NewRNG(4711)

	keys := rng.BinaryKeys(8, 32)

	assert.Len(t, keys, 8)
	for _, k := range keys {
		assert.Len(t, k, 32)
	}
}

func TestZipfIndices(t *testing.T) {
	rng := NewRNG(42)

	idx := rng.ZipfIndices(10000, 100, 1.5)

	counts := make([]int, 100)
	for _, i := range idx {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 100)
		counts[i]++
	}
	// The head dominates the tail.
	assert.Greater(t, counts[0], counts[99]*10)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	k1 := rng.Keys(10, 4, 8)

	rng.Reset()
	k2 := rng.Keys(10, 4, 8)

	assert.Equal(t, k1, k2)
	assert.Equal(t, int64(4711), rng.Seed())
}
