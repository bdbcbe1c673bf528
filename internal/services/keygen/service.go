package keygen

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"rsakit/internal/domain"
	"rsakit/internal/logging"
	"rsakit/internal/rsa"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service generates key pairs and hands them to a KeyStore.
type Service struct {
	store domain.KeyStore
	log   logging.Logger
}

// New returns a key generation service backed by the given store.
func New(s domain.KeyStore, log logging.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{store: s, log: log.With("service", "keygen")}
}

// GenerateKeyPair generates a key pair per req and writes it into req.Dir.
// An empty passphrase leaves the private key in clear text; a non-empty one
// must satisfy the strength policy.
func (s *Service) GenerateKeyPair(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResult, error) {
	if req.Passphrase != "" && !isSecurePassphrase(req.Passphrase) {
		return domain.GenerateResult{}, ErrWeakPassphrase
	}

	gen, err := rsa.NewGenerator(rsa.Options{
		Bits:        req.Bits,
		Exponent:    req.Exponent,
		Rounds:      req.Rounds,
		MaxAttempts: req.MaxAttempts,
	})
	if err != nil {
		return domain.GenerateResult{}, err
	}
	opts := gen.Options()
	s.log.Info(ctx, "generating key pair",
		"bits_per_prime", opts.Bits,
		"public_exponent", opts.Exponent,
		"rounds", opts.Rounds,
		"max_attempts", opts.MaxAttempts,
	)

	start := time.Now()
	kp, err := gen.Generate()
	if err != nil {
		s.log.Error(ctx, "key generation failed", "attempts", gen.Attempts, "err", err)
		return domain.GenerateResult{}, fmt.Errorf("generate key pair: %w", err)
	}
	s.log.Debug(ctx, "key pair ready",
		"modulus_bits", kp.Public.BitLen(),
		"attempts", gen.Attempts,
		"elapsed", time.Since(start),
		logging.Redacted("private_exponent"),
	)

	paths, err := s.store.SaveKeyPair(req.Dir, req.Passphrase, kp)
	if err != nil {
		return domain.GenerateResult{}, fmt.Errorf("store key pair: %w", err)
	}
	s.log.Info(ctx, "key pair written",
		"public", paths.Public,
		"private", paths.Private,
		"sealed", req.Passphrase != "",
	)

	return domain.GenerateResult{
		Paths:       paths,
		ModulusBits: kp.Public.BitLen(),
		Attempts:    gen.Attempts,
	}, nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
