// Package numtheory implements the number-theoretic kernel behind rsakit.
//
// Contents
//
//   - Binary modular exponentiation (ModPow)
//   - Extended Euclidean algorithm with Bézout coefficients (ExtendedEuclidean),
//     least common multiple (LCM) and modular inverse (ModInverse)
//   - Miller–Rabin probable-prime test (MillerRabin)
//   - Uniform ranged sampling and little-endian codecs over math/big
//
// # Notes
//
// Arbitrary-precision arithmetic comes from math/big; randomness is drawn from
// any io.Reader so callers and tests can supply their own entropy source.
// Inputs are never mutated; every function returns freshly allocated values.
//
// None of these routines are constant time.
package numtheory
