// keys.go - key derivation and role split
//
// Grounded on original_source/calico-mobile/Calico.cpp's calico_key():
// expand the 32-byte session key into keystream via a 20-round ChaCha
// run from an all-zero IV/counter, split the keystream into two equal
// halves, and assign local/remote by role so that installing the same
// key with opposite roles on two sessions yields exactly-matched
// send/receive pairs.
//
// To the extent possible under law, the authors of this package have
// dedicated it to the public domain.

package calico

const (
	// KeySize is the size in bytes of the caller-supplied session key.
	KeySize = 32

	// messageKeySize is 32 bytes of ChaCha cipher key followed by 16
	// bytes of SipHash MAC key, per spec.md §3.
	messageKeySize = 48

	keyDerivationRounds = 20
)

// messageKey is the 48-byte per-direction, per-channel key: the first
// 32 bytes are the ChaCha cipher key, the last 16 are the SipHash MAC
// key.
type messageKey [messageKeySize]byte

func (k *messageKey) cipherKey() []byte { return k[:32] }
func (k *messageKey) macKey() []byte    { return k[32:48] }

// deriveKeys expands sessionKey into the local/remote message keys for
// the stream channel, and (when datagram is true) the datagram channel,
// according to role. The scratch keystream buffer is zeroed before
// return.
func deriveKeys(sessionKey []byte, role Role, datagram bool) (localStream, remoteStream, localDatagram, remoteDatagram messageKey, err error) {
	if len(sessionKey) != KeySize {
		err = ErrInvalidKey
		return
	}
	if role != Initiator && role != Responder {
		err = ErrInvalidRole
		return
	}

	perSide := messageKeySize // stream only
	if datagram {
		perSide = messageKeySize * 2 // stream + datagram
	}

	keystream := make([]byte, perSide*2)
	defer secureZero(keystream)

	var nonce [chachaNonceSize]byte // all-zero nonce, counter 0
	cipher := newChaCha(sessionKey, nonce[:], keyDerivationRounds)
	if _, err := cipher.Read(keystream); err != nil {
		panic("calico: key-derivation keystream exhausted")
	}

	h0 := keystream[:perSide]
	h1 := keystream[perSide:]

	var localHalf, remoteHalf []byte
	if role == Initiator {
		localHalf, remoteHalf = h1, h0
	} else {
		localHalf, remoteHalf = h0, h1
	}

	copy(localStream[:], localHalf[:messageKeySize])
	copy(remoteStream[:], remoteHalf[:messageKeySize])
	if datagram {
		copy(localDatagram[:], localHalf[messageKeySize:messageKeySize*2])
		copy(remoteDatagram[:], remoteHalf[messageKeySize:messageKeySize*2])
	}
	return
}
