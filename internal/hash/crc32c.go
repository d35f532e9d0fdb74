package hash

import (
	"hash/crc32"
)

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// CRC32C64 spreads a CRC32C checksum over 64 bits with a Fibonacci multiply so
// that consecutive probe windows do not cluster on the low bits.
func CRC32C64(data []byte) uint64 {
	return uint64(CRC32C(data)) * 0x9E3779B97F4A7C15
}
