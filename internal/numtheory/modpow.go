package numtheory

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ModPow returns base^exponent mod modulus using square-and-multiply,
// walking the exponent from the least significant bit upwards.
//
// A modulus of 1 yields 0. exponent must be non-negative and modulus positive;
// anything else is a programming error and panics.
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Sign() <= 0 {
		panic("numtheory: ModPow with non-positive modulus")
	}
	if exponent.Sign() < 0 {
		panic("numtheory: ModPow with negative exponent")
	}
	if modulus.Cmp(one) == 0 {
		return new(big.Int)
	}

	b := new(big.Int).Mod(base, modulus)
	result := big.NewInt(1)
	for i, n := 0, exponent.BitLen(); i < n; i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
	}
	return result
}
