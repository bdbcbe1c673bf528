package numtheory

import (
	"io"
	"math/big"
)

// DefaultRounds is the witness count used for key generation. Each round lets
// a composite through with probability at most 1/4, so a candidate is falsely
// accepted with probability at most 4^-4.
const DefaultRounds = 4

var three = big.NewInt(3)

// MillerRabin reports whether n is a probable prime after rounds random
// witnesses drawn from rand. Values <= 2 and even values are rejected; rounds
// below 1 count as one round. The only error is a failed entropy read.
func MillerRabin(n *big.Int, rounds int, rand io.Reader) (bool, error) {
	if n.Cmp(two) <= 0 || n.Bit(0) == 0 {
		return false, nil
	}
	// [2, n-2] is empty for 3.
	if n.Cmp(three) == 0 {
		return true, nil
	}
	if rounds < 1 {
		rounds = 1
	}

	nMinusOne := new(big.Int).Sub(n, one)
	nMinusTwo := new(big.Int).Sub(n, two)

	// n-1 = 2^s * d with d odd
	s := nMinusOne.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinusOne, s)

	for i := 0; i < rounds; i++ {
		a, err := RandInt(rand, two, nMinusTwo)
		if err != nil {
			return false, err
		}
		x := ModPow(a, d, n)
		for j := uint(0); j < s; j++ {
			y := ModPow(x, two, n)
			if y.Cmp(one) == 0 && x.Cmp(one) != 0 && x.Cmp(nMinusOne) != 0 {
				return false, nil
			}
			x = y
		}
		if x.Cmp(one) != 0 {
			return false, nil
		}
	}
	return true, nil
}
