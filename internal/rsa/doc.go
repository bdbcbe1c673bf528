// Package rsa holds the RSA key model and key-pair generation.
//
// # Keys
//
// A Key is an immutable (exponent, modulus) pair. Public and private halves
// share the same type; only the exponent differs. A KeyPair bundles both
// halves over a common modulus n = p·q.
//
// # Generation
//
// Generator samples probable primes with numtheory.MillerRabin, derives the
// private exponent as the inverse of e modulo λ(n) = lcm(p−1, q−1) and retries
// with fresh primes whenever e is not invertible. Primes are discarded once
// the pair is built.
//
// # Text format
//
// Keys serialise to two ASCII lines of decimal digits: the modulus, then the
// exponent. See Key.MarshalText and ParseKey.
//
// # Errors
//
// ErrInvalidKey reports a prime pair that cannot carry the chosen exponent; it
// is handled inside Generate. ErrMalformedKey reports an unreadable key text.
package rsa
