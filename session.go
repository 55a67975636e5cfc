// session.go - session state machine and public API
//
// Grounded on original_source/calico-mobile/Calico.cpp's six
// calico_* entry points, reshaped from its flag-gated C struct into a
// Go sum type (KeyedMode) per spec.md §9's design note, and on the
// teacher's hs1siv.go AEAD/New/Seal/Open naming for Go method style.
//
// To the extent possible under law, the authors of this package have
// dedicated it to the public domain.

package calico

const (
	// DatagramOverhead is the number of bytes the datagram channel adds
	// to every message: 3 bytes of obfuscated truncated IV followed by
	// an 8-byte little-endian MAC tag.
	DatagramOverhead = 11

	// StreamOverhead is the number of bytes the stream channel adds to
	// every message: an 8-byte little-endian MAC tag.
	StreamOverhead = 8

	maxCounter = ^uint64(0)
)

// Role identifies which side of a Calico conversation a Session plays.
// Both sides must choose different roles for the derived key material
// to line up; the library cannot detect two sessions sharing a role.
type Role uint8

const (
	// Initiator is one of the two roles a Session may take.
	Initiator Role = 1
	// Responder is the other of the two roles a Session may take.
	Responder Role = 2
)

// KeyedMode identifies which channels a Session supports.
type KeyedMode uint8

const (
	// Unkeyed is the zero value: no key material has been installed and
	// every operation fails.
	Unkeyed KeyedMode = iota
	// StreamOnly sessions support only the stream channel, at half the
	// key-material footprint of DatagramAndStream.
	StreamOnly
	// DatagramAndStream sessions support both channels.
	DatagramAndStream
)

// Session is a keyed Calico endpoint with a fixed role. It is not safe
// for concurrent use; see the package doc.
type Session struct {
	mode KeyedMode
	role Role

	localStream, remoteStream     messageKey
	localDatagram, remoteDatagram messageKey

	streamSend, streamRecv uint64
	datagramSend           uint64

	replay antiReplayWindow
}

// NewSession returns an unkeyed Session. Call KeyDatagram or
// KeyStreamOnly before using it.
func NewSession() *Session {
	return &Session{}
}

// KeyDatagram installs key material derived from sessionKey (exactly
// KeySize bytes) for the given role, enabling both the datagram and
// stream channels. Any key material already installed is erased first
// and all counters restart at zero; re-keying with the same sessionKey
// therefore reuses IVs, and the session does not detect it.
func (s *Session) KeyDatagram(role Role, sessionKey []byte) error {
	localStream, remoteStream, localDatagram, remoteDatagram, err := deriveKeys(sessionKey, role, true)
	if err != nil {
		return err
	}

	s.Teardown()

	s.role = role
	s.localStream = localStream
	s.remoteStream = remoteStream
	s.localDatagram = localDatagram
	s.remoteDatagram = remoteDatagram
	s.streamSend, s.streamRecv = 0, 0
	s.datagramSend = 0
	s.replay.reset()
	s.mode = DatagramAndStream
	return nil
}

// KeyStreamOnly installs key material derived from sessionKey (exactly
// KeySize bytes) for the given role, enabling only the stream channel at
// half the key-material footprint of KeyDatagram.
func (s *Session) KeyStreamOnly(role Role, sessionKey []byte) error {
	localStream, remoteStream, _, _, err := deriveKeys(sessionKey, role, false)
	if err != nil {
		return err
	}

	s.Teardown()

	s.role = role
	s.localStream = localStream
	s.remoteStream = remoteStream
	s.streamSend, s.streamRecv = 0, 0
	s.mode = StreamOnly
	return nil
}

// DatagramEncrypt encrypts plaintext for the datagram channel. dst must
// either be nil/empty (a new buffer is allocated) or have length at
// least len(plaintext); plaintext and dst may alias exactly. It returns
// the ciphertext and an 11-byte overhead block that must be transmitted
// alongside it.
func (s *Session) DatagramEncrypt(dst, plaintext []byte) (ciphertext, overhead []byte, err error) {
	if s.mode != DatagramAndStream {
		if s.mode == Unkeyed {
			return nil, nil, ErrNotKeyed
		}
		return nil, nil, ErrWrongMode
	}

	dst, err = encryptDst(dst, plaintext)
	if err != nil {
		return nil, nil, err
	}

	iv := s.datagramSend
	if iv == maxCounter {
		return nil, nil, ErrIVExhausted
	}

	tag := messageEncrypt(&s.localDatagram, iv, dst, plaintext)
	s.datagramSend = iv + 1

	ivField := encodeTruncatedIV(iv, tag)
	ov := make([]byte, DatagramOverhead)
	copy(ov[0:3], ivField[:])
	putUint64LE(ov[3:11], tag)

	return dst, ov, nil
}

// DatagramDecrypt authenticates and decrypts ciphertext in place for
// the datagram channel, using the 11-byte overhead block the sender
// produced. On failure (tag mismatch or anti-replay rejection) the
// session's counters and replay window are left unchanged and the
// caller-visible error is always ErrAuthenticationFailed, regardless of
// which check failed.
func (s *Session) DatagramDecrypt(ciphertext []byte, overhead []byte) ([]byte, error) {
	if s.mode != DatagramAndStream {
		if s.mode == Unkeyed {
			return nil, ErrNotKeyed
		}
		return nil, ErrWrongMode
	}
	if len(overhead) != DatagramOverhead {
		return nil, ErrOverheadSize
	}

	if err := s.datagramDecryptInternal(ciphertext, overhead); err != nil {
		return nil, ErrAuthenticationFailed
	}
	return ciphertext, nil
}

// datagramDecryptInternal performs the actual datagram decrypt and
// returns the specific internal cause of failure (errReplayDropped or
// errAuthMismatch), so tests can distinguish them. The public
// DatagramDecrypt collapses both to ErrAuthenticationFailed, per
// spec.md §7's "the design deliberately avoids leaking which check
// failed".
func (s *Session) datagramDecryptInternal(ciphertext []byte, overhead []byte) error {
	var ivField [3]byte
	copy(ivField[:], overhead[0:3])
	tag := uint64LE(overhead[3:11])

	iv := decodeTruncatedIV(ivField, tag, s.replay.newestIV)

	if !s.replay.check(iv) {
		return errReplayDropped
	}

	if !messageDecrypt(&s.remoteDatagram, iv, ciphertext, tag) {
		return errAuthMismatch
	}

	s.replay.accept(iv)
	return nil
}

// StreamEncrypt encrypts plaintext for the stream channel. The IV is
// the session's implicit send counter; it is not carried on the wire.
// dst and plaintext may alias exactly.
func (s *Session) StreamEncrypt(dst, plaintext []byte) (ciphertext, overhead []byte, err error) {
	if s.mode != StreamOnly && s.mode != DatagramAndStream {
		return nil, nil, ErrNotKeyed
	}

	dst, err = encryptDst(dst, plaintext)
	if err != nil {
		return nil, nil, err
	}

	iv := s.streamSend
	if iv == maxCounter {
		return nil, nil, ErrIVExhausted
	}

	tag := messageEncrypt(&s.localStream, iv, dst, plaintext)
	s.streamSend = iv + 1

	ov := make([]byte, StreamOverhead)
	putUint64LE(ov, tag)

	return dst, ov, nil
}

// StreamDecrypt authenticates and decrypts ciphertext in place for the
// stream channel. The expected IV is the session's implicit receive
// counter: any out-of-order or dropped message causes authentication
// failure, since the counter used to decrypt is never carried on the
// wire. On failure the receive counter is left unchanged.
func (s *Session) StreamDecrypt(ciphertext []byte, overhead []byte) ([]byte, error) {
	if s.mode != StreamOnly && s.mode != DatagramAndStream {
		return nil, ErrNotKeyed
	}
	if len(overhead) != StreamOverhead {
		return nil, ErrOverheadSize
	}

	iv := s.streamRecv
	tag := uint64LE(overhead)

	if !messageDecrypt(&s.remoteStream, iv, ciphertext, tag) {
		return nil, ErrAuthenticationFailed
	}

	s.streamRecv = iv + 1
	return ciphertext, nil
}

// Teardown securely erases all key material and resets the session to
// Unkeyed. It is idempotent and safe to call on a never-keyed session.
func (s *Session) Teardown() {
	s.localStream.erase()
	s.remoteStream.erase()
	s.localDatagram.erase()
	s.remoteDatagram.erase()

	s.mode = Unkeyed
	s.role = 0
	s.streamSend, s.streamRecv = 0, 0
	s.datagramSend = 0
	s.replay.reset()
}

// encryptDst validates and prepares the destination buffer for an
// encrypt call: a nil/empty dst allocates a fresh buffer, otherwise dst
// must be at least len(plaintext) bytes (it may alias plaintext).
func encryptDst(dst, plaintext []byte) ([]byte, error) {
	if len(dst) == 0 {
		return make([]byte, len(plaintext)), nil
	}
	if len(dst) < len(plaintext) {
		return nil, ErrBufferTooSmall
	}
	return dst[:len(plaintext)], nil
}
