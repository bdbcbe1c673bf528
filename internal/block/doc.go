// Package block streams bytes through raw RSA exponentiation one fixed-size
// block at a time.
//
// # Layout
//
// For a modulus of M bits a ciphertext block is ceil(M/8) bytes and a
// plaintext block carries at most floor(M/8)−1 bytes. Each plaintext block is
// followed by a single 0x01 sentinel byte before it is read as a
// little-endian integer, so zero bytes at either end of the data survive the
// trip through big-integer arithmetic. The one byte of slack keeps every
// block value below the modulus.
//
// Blocks are independent and processed in order. There is no padding scheme,
// chaining or IV: identical plaintext blocks map to identical ciphertext
// blocks under the same key.
package block
