// chacha_test.go - ChaCha core adapter properties
//
// To the extent possible under law, the authors of this package have
// dedicated it to the public domain.

package calico

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChaChaKeystreamIsDeterministic(t *testing.T) {
	require := require.New(t)
	key := make([]byte, chachaKeySize)
	for i := range key {
		key[i] = byte(i)
	}
	nonce := make([]byte, chachaNonceSize)

	a := newChaCha(key, nonce, 20)
	b := newChaCha(key, nonce, 20)

	out1 := make([]byte, 300)
	out2 := make([]byte, 300)
	_, err := a.Read(out1)
	require.NoError(err)
	_, err = b.Read(out2)
	require.NoError(err)

	require.Equal(out1, out2)
}

func TestChaChaDifferentNoncesDiffer(t *testing.T) {
	require := require.New(t)
	key := make([]byte, chachaKeySize)

	nonceA := make([]byte, chachaNonceSize)
	nonceB := make([]byte, chachaNonceSize)
	nonceB[0] = 1

	a := newChaCha(key, nonceA, 20)
	b := newChaCha(key, nonceB, 20)

	out1 := make([]byte, 64)
	out2 := make([]byte, 64)
	_, _ = a.Read(out1)
	_, _ = b.Read(out2)

	require.NotEqual(out1, out2)
}

func TestChaChaDifferentRoundCountsDiffer(t *testing.T) {
	require := require.New(t)
	key := make([]byte, chachaKeySize)
	nonce := make([]byte, chachaNonceSize)

	a := newChaCha(key, nonce, 20)
	b := newChaCha(key, nonce, 14)

	out1 := make([]byte, 64)
	out2 := make([]byte, 64)
	_, _ = a.Read(out1)
	_, _ = b.Read(out2)

	require.NotEqual(out1, out2)
}

func TestChaChaXorKeyStreamRoundTrip(t *testing.T) {
	require := require.New(t)
	key := make([]byte, chachaKeySize)
	nonce := make([]byte, chachaNonceSize)
	for i := range key {
		key[i] = byte(i * 7)
	}

	plaintext := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 10)

	enc := newChaCha(key, nonce, 20)
	ciphertext := make([]byte, len(plaintext))
	enc.XORKeyStream(ciphertext, plaintext)
	require.NotEqual(plaintext, ciphertext)

	dec := newChaCha(key, nonce, 20)
	recovered := make([]byte, len(ciphertext))
	dec.XORKeyStream(recovered, ciphertext)
	require.Equal(plaintext, recovered)
}

func TestChaChaXorKeyStreamAliasedBuffer(t *testing.T) {
	require := require.New(t)
	key := make([]byte, chachaKeySize)
	nonce := make([]byte, chachaNonceSize)

	plaintext := []byte("aliased in-place buffer test message")
	original := append([]byte(nil), plaintext...)

	cipher := newChaCha(key, nonce, 14)
	cipher.XORKeyStream(plaintext, plaintext)
	require.NotEqual(original, plaintext)

	cipher2 := newChaCha(key, nonce, 14)
	cipher2.XORKeyStream(plaintext, plaintext)
	require.Equal(original, plaintext)
}

func TestChaChaSeekMatchesSequentialKeystream(t *testing.T) {
	require := require.New(t)
	key := make([]byte, chachaKeySize)
	nonce := make([]byte, chachaNonceSize)

	const blockSize = 64

	full := newChaCha(key, nonce, 20)
	combined := make([]byte, blockSize*3)
	_, err := full.Read(combined)
	require.NoError(err)

	seeked := newChaCha(key, nonce, 20)
	seeked.Seek(2)
	block := make([]byte, blockSize)
	_, err = seeked.Read(block)
	require.NoError(err)

	require.Equal(combined[blockSize*2:blockSize*3], block)
}

func TestChaChaNonceFromIVIsLittleEndian(t *testing.T) {
	require := require.New(t)
	nonce := chachaNonceFromIV(0x0102030405060708)
	require.Equal([chachaNonceSize]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, nonce)
}

func TestChaChaInvalidKeyOrNonceSizePanics(t *testing.T) {
	require := require.New(t)
	require.Panics(func() {
		newChaCha(make([]byte, 16), make([]byte, chachaNonceSize), 20)
	})
	require.Panics(func() {
		newChaCha(make([]byte, chachaKeySize), make([]byte, 12), 20)
	})
}
