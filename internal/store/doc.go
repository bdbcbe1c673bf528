// Package store provides file-based persistence for rsakit keys.
//
// KeyFileStore writes each half of a key pair as the two-line decimal text
// format (modulus, then exponent) under the names key.public and key.private.
// Writes go through a temp file and an atomic rename, and all methods are
// safe for concurrent use via internal locking.
//
// When a passphrase is given the private half is sealed instead: the key text
// is encrypted with ChaCha20-Poly1305 under an scrypt-derived key and stored
// as a small JSON envelope. LoadKey detects the envelope and opens it, so
// callers never need to know which form a file is in.
package store
