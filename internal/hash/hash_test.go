package hash

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFNV1a_MatchesStdlib(t *testing.T) {
	for _, s := range []string{"", "a", "alpha", "beta", "a much longer key with spaces"} {
		h := fnv.New64a()
		_, _ = h.Write([]byte(s))
		assert.Equal(t, h.Sum64(), FNV1a([]byte(s)), "key %q", s)
	}
}

func TestHashes_Deterministic(t *testing.T) {
	fns := map[string]func([]byte) uint64{
		"xxh64":    XXH64,
		"murmur3":  Murmur3,
		"fnv1a":    FNV1a,
		"crc32c64": CRC32C64,
	}

	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, fn([]byte("alpha")), fn([]byte("alpha")))
			assert.NotEqual(t, fn([]byte("alpha")), fn([]byte("beta")))
		})
	}
}

func TestXXH64_KnownVector(t *testing.T) {
	// xxHash64 of the empty input with seed 0.
	assert.Equal(t, uint64(0xef46db3751d8e999), XXH64(nil))
}

func TestCRC32C_KnownVector(t *testing.T) {
	assert.Equal(t, uint32(0xe3069283), CRC32C([]byte("123456789")))
}
