// erase.go - secure erase
//
// To the extent possible under law, the authors of this package have
// dedicated it to the public domain.

package calico

import "runtime"

// secureZero overwrites b with zeros through a path the compiler is
// unlikely to optimize away: the function is marked noinline, and
// runtime.KeepAlive pins b live past the final write so the store
// cannot be proven dead and elided.
//
//go:noinline
func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

func (k *messageKey) erase() {
	secureZero(k[:])
}
