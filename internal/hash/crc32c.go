package hash

import (
	"hash/crc32"
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
// Used to verify compressed column blocks before decoding.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}
