// errors.go - error taxonomy
//
// To the extent possible under law, the authors of this package have
// dedicated it to the public domain, following the convention of the
// packages it builds on.

package calico

import "errors"

// Public error values. Every exported operation returns one of these
// (wrapped or bare) on failure, or nil on success.
var (
	// ErrInvalidKey is returned when a key is not exactly KeySize bytes.
	ErrInvalidKey = errors.New("calico: key must be 32 bytes")

	// ErrInvalidRole is returned when a role is neither Initiator nor
	// Responder.
	ErrInvalidRole = errors.New("calico: role must be Initiator or Responder")

	// ErrNotKeyed is returned when an operation that requires a keyed
	// session is called on an Unkeyed one.
	ErrNotKeyed = errors.New("calico: session is not keyed")

	// ErrWrongMode is returned when an operation is called in a mode
	// that does not support it (e.g. a datagram call on a session keyed
	// with KeyStreamOnly).
	ErrWrongMode = errors.New("calico: operation not valid for session mode")

	// ErrBufferTooSmall is returned when a caller-supplied destination
	// buffer cannot hold the result.
	ErrBufferTooSmall = errors.New("calico: destination buffer too small")

	// ErrOverheadSize is returned when a caller-supplied overhead slice
	// is not exactly the size the channel requires.
	ErrOverheadSize = errors.New("calico: overhead buffer is the wrong size")

	// ErrIVExhausted is returned when a send counter has reached
	// 2^64-1 and the next message cannot be assigned a fresh IV.
	ErrIVExhausted = errors.New("calico: send counter exhausted")

	// ErrAuthenticationFailed is returned by datagram and stream decrypt
	// when the message fails to authenticate, whether because the MAC
	// tag did not match or because the datagram was rejected by the
	// anti-replay window. The two causes are deliberately not
	// distinguishable from outside the package, to avoid giving an
	// attacker an oracle on which check failed.
	ErrAuthenticationFailed = errors.New("calico: message authentication failed")

	// ErrVersionMismatch is returned by CheckVersion when the caller's
	// expected protocol version does not match Version.
	ErrVersionMismatch = errors.New("calico: protocol version mismatch")
)

// internal causes, collapsed to ErrAuthenticationFailed at the public
// boundary. Kept distinct so tests can assert which path rejected a
// message.
var (
	errReplayDropped = errors.New("calico: datagram rejected by anti-replay window")
	errAuthMismatch  = errors.New("calico: MAC tag mismatch")
)
