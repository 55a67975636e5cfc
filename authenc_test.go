// authenc_test.go - per-message authenticated encryption primitive
//
// To the extent possible under law, the authors of this package have
// dedicated it to the public domain.

package calico

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testMessageKey() messageKey {
	var k messageKey
	for i := range k {
		k[i] = byte(i * 5)
	}
	return k
}

func TestMessageEncryptDecryptRoundTrip(t *testing.T) {
	require := require.New(t)
	key := testMessageKey()
	plaintext := []byte("round trip through the message-level primitive")

	ciphertext := append([]byte(nil), plaintext...)
	tag := messageEncrypt(&key, 99, ciphertext, ciphertext)
	require.NotEqual(plaintext, ciphertext)

	ok := messageDecrypt(&key, 99, ciphertext, tag)
	require.True(ok)
	require.Equal(plaintext, ciphertext)
}

func TestMessageDecryptWrongIVFails(t *testing.T) {
	require := require.New(t)
	key := testMessageKey()
	plaintext := []byte("bound to its iv")

	ciphertext := append([]byte(nil), plaintext...)
	tag := messageEncrypt(&key, 1, ciphertext, ciphertext)

	before := append([]byte(nil), ciphertext...)
	ok := messageDecrypt(&key, 2, ciphertext, tag)
	require.False(ok)
	require.Equal(before, ciphertext, "buffer must be untouched on failure")
}

func TestMessageDecryptWrongKeyFails(t *testing.T) {
	require := require.New(t)
	keyA := testMessageKey()
	keyB := testMessageKey()
	keyB[0] ^= 0xFF

	plaintext := []byte("different key, different world")
	ciphertext := append([]byte(nil), plaintext...)
	tag := messageEncrypt(&keyA, 5, ciphertext, ciphertext)

	ok := messageDecrypt(&keyB, 5, ciphertext, tag)
	require.False(ok)
}

func TestComputeTagDeterministicAndIVBound(t *testing.T) {
	require := require.New(t)
	key := testMessageKey()
	data := []byte("tag me")

	tagA := computeTag(key.macKey(), data, 1)
	tagB := computeTag(key.macKey(), data, 1)
	require.Equal(tagA, tagB)

	tagDifferentIV := computeTag(key.macKey(), data, 2)
	require.NotEqual(tagA, tagDifferentIV)
}

func TestComputeTagSensitiveToCiphertext(t *testing.T) {
	require := require.New(t)
	key := testMessageKey()
	a := []byte("message one")
	b := []byte("message two")

	require.NotEqual(computeTag(key.macKey(), a, 0), computeTag(key.macKey(), b, 0))
}
