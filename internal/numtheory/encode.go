package numtheory

import "math/big"

// FromLittleEndian interprets b as an unsigned little-endian integer.
func FromLittleEndian(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(be)
}

// ToLittleEndian returns the minimal little-endian encoding of x (empty for 0).
// x must be non-negative.
func ToLittleEndian(x *big.Int) []byte {
	out := x.Bytes()
	reverse(out)
	return out
}

// ToLittleEndianPadded encodes x little-endian and right-pads with zeros to
// size bytes. It panics if x does not fit.
func ToLittleEndianPadded(x *big.Int, size int) []byte {
	out := make([]byte, size)
	x.FillBytes(out)
	reverse(out)
	return out
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
