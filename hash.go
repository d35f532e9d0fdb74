package flatmap

import "github.com/hupe1980/flatmap/internal/hash"

// Hasher maps a key to its home slot before reduction modulo the capacity.
// It must be deterministic for the lifetime of a table.
type Hasher func(key []byte) uint64

// XXHash is the default Hasher (xxHash64).
func XXHash(key []byte) uint64 { return hash.XXH64(key) }

// Murmur3 hashes with 64-bit MurmurHash3.
func Murmur3(key []byte) uint64 { return hash.Murmur3(key) }

// FNV1a hashes with 64-bit FNV-1a.
func FNV1a(key []byte) uint64 { return hash.FNV1a(key) }

// CRC32C hashes with hardware-accelerated CRC-32C, spread to 64 bits.
func CRC32C(key []byte) uint64 { return hash.CRC32C64(key) }
