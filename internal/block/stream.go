package block

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"rsakit/internal/numtheory"
	"rsakit/internal/rsa"
)

// Sentinel marks the end of plaintext inside a block.
const Sentinel = 0x01

var (
	// ErrModulusTooSmall is returned when a block cannot hold even one byte.
	ErrModulusTooSmall = errors.New("block: modulus too small for block transform")

	// ErrTruncatedBlock is returned when ciphertext ends mid-block.
	ErrTruncatedBlock = errors.New("block: truncated ciphertext block")

	// ErrBlockOutOfRange is returned for a ciphertext block not below the modulus.
	ErrBlockOutOfRange = errors.New("block: ciphertext block exceeds modulus")

	// ErrCorruptBlock is returned when a decrypted block lacks its sentinel,
	// typically because the wrong key was used.
	ErrCorruptBlock = errors.New("block: missing end-of-data sentinel")
)

// Stats summarises a completed transform.
type Stats struct {
	Blocks   int
	BytesIn  int64
	BytesOut int64
}

// Sizes returns the plaintext and ciphertext block sizes for k.
func Sizes(k rsa.Key) (in, out int, err error) {
	m := k.BitLen()
	in = m/8 - 1
	out = (m + 7) / 8
	if in < 1 {
		return 0, 0, fmt.Errorf("%w: %d-bit modulus", ErrModulusTooSmall, m)
	}
	return in, out, nil
}

// Encrypt reads plaintext from r and writes one ciphertext block per
// plaintext block to w, raising each to k's exponent.
func Encrypt(w io.Writer, r io.Reader, k rsa.Key) (Stats, error) {
	var st Stats
	in, out, err := Sizes(k)
	if err != nil {
		return st, err
	}
	e, n := k.Exponent(), k.Modulus()

	buf := make([]byte, in+1)
	for {
		clear(buf)
		read, err := io.ReadFull(r, buf[:in])
		if read == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				return st, nil
			}
			return st, fmt.Errorf("read plaintext: %w", err)
		}
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
			return st, fmt.Errorf("read plaintext: %w", err)
		}
		buf[read] = Sentinel

		c := numtheory.ModPow(numtheory.FromLittleEndian(buf[:read+1]), e, n)
		if _, err := w.Write(numtheory.ToLittleEndianPadded(c, out)); err != nil {
			return st, fmt.Errorf("write ciphertext: %w", err)
		}
		st.Blocks++
		st.BytesIn += int64(read)
		st.BytesOut += int64(out)
	}
}

// Decrypt reads ciphertext blocks from r, raises each to k's exponent and
// writes the recovered plaintext to w.
func Decrypt(w io.Writer, r io.Reader, k rsa.Key) (Stats, error) {
	var st Stats
	_, out, err := Sizes(k)
	if err != nil {
		return st, err
	}
	e, n := k.Exponent(), k.Modulus()

	buf := make([]byte, out)
	for {
		read, err := io.ReadFull(r, buf)
		switch {
		case read == 0 && (err == nil || errors.Is(err, io.EOF)):
			return st, nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			return st, fmt.Errorf("%w: block %d has %d of %d bytes", ErrTruncatedBlock, st.Blocks, read, out)
		case err != nil:
			return st, fmt.Errorf("read ciphertext: %w", err)
		}

		c := numtheory.FromLittleEndian(buf)
		if c.Cmp(n) >= 0 {
			return st, fmt.Errorf("%w: block %d", ErrBlockOutOfRange, st.Blocks)
		}
		plain, err := unseal(numtheory.ModPow(c, e, n))
		if err != nil {
			return st, fmt.Errorf("block %d: %w", st.Blocks, err)
		}
		if _, err := w.Write(plain); err != nil {
			return st, fmt.Errorf("write plaintext: %w", err)
		}
		st.Blocks++
		st.BytesIn += int64(out)
		st.BytesOut += int64(len(plain))
	}
}

// unseal strips the trailing sentinel from a decrypted block value.
func unseal(m *big.Int) ([]byte, error) {
	b := numtheory.ToLittleEndian(m)
	if len(b) == 0 || b[len(b)-1] != Sentinel {
		return nil, ErrCorruptBlock
	}
	return b[:len(b)-1], nil
}
