// Package checksum computes the optional trailing integrity checksum the
// persistence codec appends to a store's uncompressed body.
package checksum

import "github.com/zeebo/xxh3"

// Size is the width in bytes of a checksum value as stored on disk.
const Size = 8

// Sum64 returns the 64-bit XXH3 checksum of data.
func Sum64(data []byte) uint64 {
	return xxh3.Hash(data)
}
