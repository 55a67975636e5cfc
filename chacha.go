// chacha.go - ChaCha stream cipher core
//
// Calico needs a single ChaCha construction shared by both an 20-round
// key-derivation pass and a 14-round per-message pass, each addressed
// by an 8-byte nonce and 64-bit block counter (the original Bernstein
// layout), which golang.org/x/crypto/chacha20's fixed 20-round,
// 12/24-byte-nonce API cannot express. nullprogram.com/x/chacha's
// Cipher exposes exactly that shape — New(key, iv []byte, rounds int)
// with an 8-byte iv and an arbitrary even round count, plus
// io.Reader/cipher.Stream — so this file only adapts Calico's key/nonce
// sizing and IV encoding on top of it; the cipher itself is that
// module.
//
// To the extent possible under law, the authors of this package have
// dedicated it to the public domain.
package calico

import (
	"encoding/binary"

	"nullprogram.com/x/chacha"
)

const (
	chachaKeySize   = 32
	chachaNonceSize = 8
)

// newChaCha builds a ChaCha keystream generator for the given key
// (32 bytes), nonce (8 bytes), and round count. The block counter
// starts at zero.
func newChaCha(key, nonce []byte, rounds int) *chacha.Cipher {
	if len(key) != chachaKeySize {
		panic("calico: invalid chacha key size")
	}
	if len(nonce) != chachaNonceSize {
		panic("calico: invalid chacha nonce size")
	}
	return chacha.New(key, nonce, rounds)
}

// chachaNonceFromIV encodes a 64-bit IV counter as the 8-byte
// little-endian nonce spec.md §4.2 requires.
func chachaNonceFromIV(iv uint64) [chachaNonceSize]byte {
	var nonce [chachaNonceSize]byte
	binary.LittleEndian.PutUint64(nonce[:], iv)
	return nonce
}
