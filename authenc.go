// authenc.go - per-message authenticated encryption primitive
//
// Grounded on original_source/calico-mobile/AuthEnc.cpp (auth_encrypt/
// auth_decrypt: ChaCha14 keystream XOR, then a SipHash-2-4 tag, verified
// in constant time by folding a 64-bit XOR to a 32-bit OR) and on the
// teacher's hs1siv.go aeadCtx.encrypt/decrypt for the Go idiom of
// explicit in/out byte slices with no exceptions. Per SPEC_FULL.md §4,
// this pins the "mature" revision where the tag additionally binds the
// IV, by appending the little-endian IV to the ciphertext before
// hashing.
//
// To the extent possible under law, the authors of this package have
// dedicated it to the public domain.

package calico

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

const messageEncryptRounds = 14

// computeTag returns the SipHash-2-4 tag over ciphertext bound to iv.
func computeTag(macKey []byte, ciphertext []byte, iv uint64) uint64 {
	k0 := binary.LittleEndian.Uint64(macKey[0:8])
	k1 := binary.LittleEndian.Uint64(macKey[8:16])

	// Bind the tag to the IV by hashing ciphertext followed by the
	// 8-byte little-endian IV, equivalent in effect to XOR-folding the
	// IV into an internal SipHash state word: either construction
	// makes any tampering with the encoded IV field invalidate the tag.
	buf := make([]byte, len(ciphertext)+8)
	n := copy(buf, ciphertext)
	binary.LittleEndian.PutUint64(buf[n:], iv)

	return siphash.Hash(k0, k1, buf)
}

// messageEncrypt runs the ChaCha14 keystream XOR over plaintext into
// dst, then returns the SipHash-2-4 tag bound to iv. dst and plaintext
// may alias exactly.
func messageEncrypt(key *messageKey, iv uint64, dst, plaintext []byte) uint64 {
	nonce := chachaNonceFromIV(iv)
	cipher := newChaCha(key.cipherKey(), nonce[:], messageEncryptRounds)
	cipher.XORKeyStream(dst, plaintext)
	return computeTag(key.macKey(), dst, iv)
}

// messageDecrypt verifies providedTag in constant time against the
// ciphertext currently in buffer, and only on success XORs the ChaCha14
// keystream into buffer in place. Returns false (buffer left untouched
// beyond its input contents) on a tag mismatch.
func messageDecrypt(key *messageKey, iv uint64, buffer []byte, providedTag uint64) bool {
	expected := computeTag(key.macKey(), buffer, iv)

	// Constant-time compare: fold the 64-bit XOR down to 32 bits and
	// test against zero without branching on individual tag bytes.
	delta := expected ^ providedTag
	z := uint32(delta>>32) | uint32(delta)
	if z != 0 {
		return false
	}

	nonce := chachaNonceFromIV(iv)
	cipher := newChaCha(key.cipherKey(), nonce[:], messageEncryptRounds)
	cipher.XORKeyStream(buffer, buffer)
	return true
}
