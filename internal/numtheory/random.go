package numtheory

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ErrEmptyRange is returned by RandInt when hi < lo.
var ErrEmptyRange = errors.New("numtheory: empty sampling range")

// RandInt draws a uniform integer in the closed range [lo, hi] from r.
// A nil reader means crypto/rand.Reader.
func RandInt(r io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) < 0 {
		return nil, ErrEmptyRange
	}
	if r == nil {
		r = rand.Reader
	}
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, one)
	v, err := rand.Int(r, width)
	if err != nil {
		return nil, err
	}
	return v.Add(v, lo), nil
}

// RandBits draws an integer of exactly bits bits: the top bit is always set.
// When odd is true the lowest bit is also set.
func RandBits(r io.Reader, bits int, odd bool) (*big.Int, error) {
	if bits < 1 {
		return nil, ErrEmptyRange
	}
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	// drop the excess high bits of the leading byte
	if excess := uint(len(buf)*8 - bits); excess > 0 {
		buf[0] &= byte(0xff >> excess)
	}
	v := new(big.Int).SetBytes(buf)
	v.SetBit(v, bits-1, 1)
	if odd {
		v.SetBit(v, 0, 1)
	}
	return v, nil
}
