// Package keygen generates RSA key pairs and persists them.
//
// It validates generator options and the optional passphrase policy, runs
// rsa.Generator, and writes both halves via the domain.KeyStore.
package keygen
