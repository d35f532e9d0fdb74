package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// FNV-1a constants for 64-bit hash.
const (
	fnvBasis64 uint64 = 14695981039346656037
	fnvPrime64 uint64 = 1099511628211
)

// XXH64 returns the xxHash64 digest of data.
func XXH64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Murmur3 returns the 64-bit MurmurHash3 digest of data (seed 0).
func Murmur3(data []byte) uint64 {
	return murmur3.Sum64(data)
}

// FNV1a computes the 64-bit FNV-1a hash of data without allocating.
func FNV1a(data []byte) uint64 {
	h := fnvBasis64
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime64
	}
	return h
}
