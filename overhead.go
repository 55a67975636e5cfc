// overhead.go - wire-format helpers for the overhead blocks
//
// Grounded on spec.md §6.2: all multi-byte integers on the wire are
// little-endian.
//
// To the extent possible under law, the authors of this package have
// dedicated it to the public domain.

package calico

import "encoding/binary"

func putUint64LE(dst []byte, v uint64) {
	binary.LittleEndian.PutUint64(dst, v)
}

func uint64LE(src []byte) uint64 {
	return binary.LittleEndian.Uint64(src)
}
