package rsa

import "errors"

var (
	// ErrInvalidKey is returned when the public exponent is not invertible
	// modulo λ(n) for a given prime pair, or the primes coincide.
	ErrInvalidKey = errors.New("rsa: invalid key")

	// ErrMalformedKey is returned when key text is missing a line or holds
	// anything other than positive decimal integers.
	ErrMalformedKey = errors.New("rsa: malformed key")

	// ErrInvalidOptions is returned for unusable generator settings.
	ErrInvalidOptions = errors.New("rsa: invalid generator options")

	// ErrAttemptsExhausted is returned when a configured attempt bound is hit
	// before a probable prime or a consistent key pair was found.
	ErrAttemptsExhausted = errors.New("rsa: generation attempts exhausted")
)
