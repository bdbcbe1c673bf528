package rsa

import (
	"fmt"
	"math/big"
)

// Key is one half of an RSA key pair. The zero Key is not usable.
type Key struct {
	exponent *big.Int
	modulus  *big.Int
}

// NewKey returns a Key holding copies of exponent and modulus. Both must be
// positive.
func NewKey(exponent, modulus *big.Int) (Key, error) {
	if exponent == nil || exponent.Sign() <= 0 {
		return Key{}, fmt.Errorf("%w: exponent must be positive", ErrMalformedKey)
	}
	if modulus == nil || modulus.Sign() <= 0 {
		return Key{}, fmt.Errorf("%w: modulus must be positive", ErrMalformedKey)
	}
	return Key{
		exponent: new(big.Int).Set(exponent),
		modulus:  new(big.Int).Set(modulus),
	}, nil
}

// Exponent returns a copy of the key's exponent.
func (k Key) Exponent() *big.Int { return new(big.Int).Set(k.exponent) }

// Modulus returns a copy of the key's modulus.
func (k Key) Modulus() *big.Int { return new(big.Int).Set(k.modulus) }

// BitLen is the bit length of the modulus.
func (k Key) BitLen() int {
	if k.modulus == nil {
		return 0
	}
	return k.modulus.BitLen()
}

// IsZero reports whether k was never initialised.
func (k Key) IsZero() bool { return k.modulus == nil || k.exponent == nil }

// Equal reports whether both keys carry the same exponent and modulus.
func (k Key) Equal(o Key) bool {
	if k.IsZero() || o.IsZero() {
		return k.IsZero() == o.IsZero()
	}
	return k.exponent.Cmp(o.exponent) == 0 && k.modulus.Cmp(o.modulus) == 0
}

// KeyPair is a public/private pair over one modulus.
type KeyPair struct {
	Public  Key
	Private Key
}
