// Package memzero clears transient secret buffers such as derived keys and
// decrypted key text.
package memzero

import "runtime"

// Zero overwrites b with zeros. It is best effort: copies made elsewhere by
// the runtime or by callers are not reached.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	// Keep b live until after the write so it cannot be elided.
	runtime.KeepAlive(&b)
}
