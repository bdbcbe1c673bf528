package rsa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"rsakit/internal/numtheory"
)

const (
	// DefaultBits is the bit length of each prime (2048-bit modulus).
	DefaultBits = 1024
	// DefaultExponent is the public exponent F4.
	DefaultExponent = 65537
	// MinBits is the smallest prime size Generator accepts.
	MinBits = 8
)

var one = big.NewInt(1)

// Options configures a Generator. Zero fields take their defaults.
type Options struct {
	Bits     int   // bits per prime
	Exponent int64 // public exponent, odd and >= 3
	Rounds   int   // Miller–Rabin rounds per candidate

	// MaxAttempts bounds both the candidate draws per prime and the prime
	// pairs tried per key pair. Zero means unbounded.
	MaxAttempts int

	Rand io.Reader // entropy source; crypto/rand.Reader when nil
}

func (o Options) withDefaults() Options {
	if o.Bits == 0 {
		o.Bits = DefaultBits
	}
	if o.Exponent == 0 {
		o.Exponent = DefaultExponent
	}
	if o.Rounds == 0 {
		o.Rounds = numtheory.DefaultRounds
	}
	if o.Rand == nil {
		o.Rand = rand.Reader
	}
	return o
}

func (o Options) validate() error {
	switch {
	case o.Bits < MinBits:
		return fmt.Errorf("%w: bits %d below %d", ErrInvalidOptions, o.Bits, MinBits)
	case o.Exponent < 3 || o.Exponent%2 == 0:
		return fmt.Errorf("%w: exponent %d must be odd and >= 3", ErrInvalidOptions, o.Exponent)
	case o.Rounds < 1:
		return fmt.Errorf("%w: rounds %d must be >= 1", ErrInvalidOptions, o.Rounds)
	case o.MaxAttempts < 0:
		return fmt.Errorf("%w: max attempts %d is negative", ErrInvalidOptions, o.MaxAttempts)
	}
	return nil
}

// Generator produces probable primes and key pairs.
type Generator struct {
	opts Options

	// Attempts counts prime pairs tried by the last Generate call.
	Attempts int
}

// NewGenerator validates opts and returns a Generator.
func NewGenerator(opts Options) (*Generator, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Generator{opts: opts}, nil
}

// Options returns the effective settings, defaults applied.
func (g *Generator) Options() Options { return g.opts }

// ProbablePrime samples odd integers of exactly Bits bits until one passes
// Miller–Rabin.
func (g *Generator) ProbablePrime() (*big.Int, error) {
	for i := 0; g.opts.MaxAttempts == 0 || i < g.opts.MaxAttempts; i++ {
		candidate, err := numtheory.RandBits(g.opts.Rand, g.opts.Bits, true)
		if err != nil {
			return nil, fmt.Errorf("sample candidate: %w", err)
		}
		ok, err := numtheory.MillerRabin(candidate, g.opts.Rounds, g.opts.Rand)
		if err != nil {
			return nil, fmt.Errorf("primality witness: %w", err)
		}
		if ok {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: no probable prime in %d draws", ErrAttemptsExhausted, g.opts.MaxAttempts)
}

// Generate draws two probable primes and builds a key pair from them. A pair
// that cannot carry the exponent is discarded whole and both primes are
// redrawn; ErrInvalidKey never reaches the caller.
func (g *Generator) Generate() (KeyPair, error) {
	e := big.NewInt(g.opts.Exponent)
	g.Attempts = 0
	for g.opts.MaxAttempts == 0 || g.Attempts < g.opts.MaxAttempts {
		g.Attempts++

		p, err := g.ProbablePrime()
		if err != nil {
			return KeyPair{}, err
		}
		q, err := g.ProbablePrime()
		if err != nil {
			return KeyPair{}, err
		}

		kp, err := GenerateFromPrimes(p, q, e)
		if err == nil {
			return kp, nil
		}
	}
	return KeyPair{}, fmt.Errorf("%w: no valid prime pair in %d tries", ErrAttemptsExhausted, g.opts.MaxAttempts)
}

// GenerateKeyPair builds a key pair with bits per prime and public exponent e
// using crypto/rand.
func GenerateKeyPair(bits int, e int64) (KeyPair, error) {
	g, err := NewGenerator(Options{Bits: bits, Exponent: e})
	if err != nil {
		return KeyPair{}, err
	}
	return g.Generate()
}

// GenerateFromPrimes derives a key pair from primes p, q and public exponent e.
// The private exponent is e⁻¹ mod λ(n) with λ(n) = lcm(p−1, q−1).
func GenerateFromPrimes(p, q, e *big.Int) (KeyPair, error) {
	if p.Cmp(q) == 0 {
		return KeyPair{}, fmt.Errorf("%w: p and q are equal", ErrInvalidKey)
	}
	n := new(big.Int).Mul(p, q)
	lambda := numtheory.LCM(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)

	gcd, dRaw, _ := numtheory.ExtendedEuclidean(e, lambda)
	if gcd.Cmp(one) != 0 {
		return KeyPair{}, fmt.Errorf("%w: exponent not invertible mod lambda(n)", ErrInvalidKey)
	}
	d := dRaw.Mod(dRaw, lambda)

	pub, err := NewKey(e, n)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	priv, err := NewKey(d, n)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return KeyPair{Public: pub, Private: priv}, nil
}
