// Package cipher runs the raw RSA block transform over byte streams.
//
// It loads a key half through the domain.KeyStore, then hands the streams to
// internal/block. Either half can encrypt; the other half decrypts.
package cipher
