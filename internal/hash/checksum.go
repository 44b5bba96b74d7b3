package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 digest of a cell payload. The container
// stores it in the header and Parse recomputes it after decompression.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
