// version.go - protocol version compatibility check
//
// Grounded on original_source/include/calico.h's `CALICO_VERSION 5` and
// `_calico_init(expected_version)` (original_source/calico-mobile/Calico.cpp,
// original_source/src/Calico.cpp): the original gates every operation on a
// process-wide boolean set by a successful version check at startup. Per
// spec.md §9's "Global init flag" design note, this rewrite drops the
// global gate and the opaque-struct sizing check it used to also perform
// (Go's type system already rules out a malformed-size opaque buffer), but
// keeps the version identifier itself as an explicit, stateless check any
// caller can make before trusting a Session — following the
// `CurrentVersion` header-constant pattern in
// other_examples/CodeCracker-oss-Picocrypt-NG's internal/header/format.go.
//
// To the extent possible under law, the authors of this package have
// dedicated it to the public domain.

package calico

// Version is the wire/protocol version this package implements. It
// corresponds to CALICO_VERSION in the original implementation.
const Version = 5

// CheckVersion reports whether expected matches the protocol version
// this package implements, returning ErrVersionMismatch if not. Unlike
// the original's process-wide init gate, this is a stateless check a
// caller may perform at any point (or not at all); it is never required
// before using a Session.
func CheckVersion(expected int) error {
	if expected != Version {
		return ErrVersionMismatch
	}
	return nil
}
