// Package hash provides the stable byte-string hashes used to place keys.
//
// Every function is deterministic within and across processes; none of them
// is used for persistence, so any of them can serve as the probe hash.
//
//	XXH64    github.com/cespare/xxhash/v2 (default, fastest on long keys)
//	Murmur3  github.com/spaolacci/murmur3
//	FNV1a    inline FNV-1a, no dependencies, good for short keys
//	CRC32C64 hardware CRC32-Castagnoli widened to 64 bits
package hash
