package numtheory

import (
	"errors"
	"math/big"
)

// ErrNotInvertible is returned by ModInverse when gcd(a, m) != 1.
var ErrNotInvertible = errors.New("numtheory: value is not invertible")

// ExtendedEuclidean returns gcd(a, b) together with Bézout coefficients s and t
// such that a·s + b·t = gcd.
func ExtendedEuclidean(a, b *big.Int) (gcd, s, t *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, curS := big.NewInt(1), big.NewInt(0)
	oldT, curT := big.NewInt(0), big.NewInt(1)

	quotient := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		quotient.Quo(oldR, r)

		// (old, cur) <- (cur, old - quotient*cur)
		tmp.Mul(quotient, r)
		oldR.Sub(oldR, tmp)
		oldR, r = r, oldR

		tmp.Mul(quotient, curS)
		oldS.Sub(oldS, tmp)
		oldS, curS = curS, oldS

		tmp.Mul(quotient, curT)
		oldT.Sub(oldT, tmp)
		oldT, curT = curT, oldT
	}
	return oldR, oldS, oldT
}

// LCM returns the least common multiple a·b / gcd(a, b).
func LCM(a, b *big.Int) *big.Int {
	gcd, _, _ := ExtendedEuclidean(a, b)
	out := new(big.Int).Mul(a, b)
	return out.Quo(out, gcd)
}

// ModInverse returns x in [0, m) with a·x ≡ 1 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	gcd, s, _ := ExtendedEuclidean(a, m)
	if gcd.Cmp(one) != 0 {
		return nil, ErrNotInvertible
	}
	return normalize(s, m), nil
}

// normalize maps a possibly negative Bézout coefficient into [0, m).
func normalize(x, m *big.Int) *big.Int {
	out := new(big.Int).Rem(x, m)
	out.Add(out, m)
	return out.Rem(out, m)
}
