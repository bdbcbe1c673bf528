package cipher

import (
	"context"
	"fmt"
	"io"

	"rsakit/internal/block"
	"rsakit/internal/domain"
	"rsakit/internal/logging"
	"rsakit/internal/rsa"
)

// maxShownExponentBits bounds the exponents Inspect prints; anything longer
// is treated as a private exponent.
const maxShownExponentBits = 32

// Service applies the block transform with keys loaded from a KeyStore.
type Service struct {
	store domain.KeyStore
	log   logging.Logger
}

// New returns a cipher service backed by the given store.
func New(s domain.KeyStore, log logging.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{store: s, log: log.With("service", "cipher")}
}

// Encrypt streams src through the block transform under the key at keyPath.
func (s *Service) Encrypt(ctx context.Context, keyPath, passphrase string, dst io.Writer, src io.Reader) (block.Stats, error) {
	return s.run(ctx, "encrypt", block.Encrypt, keyPath, passphrase, dst, src)
}

// Decrypt reverses Encrypt using the matching key at keyPath.
func (s *Service) Decrypt(ctx context.Context, keyPath, passphrase string, dst io.Writer, src io.Reader) (block.Stats, error) {
	return s.run(ctx, "decrypt", block.Decrypt, keyPath, passphrase, dst, src)
}

type transform func(io.Writer, io.Reader, rsa.Key) (block.Stats, error)

func (s *Service) run(
	ctx context.Context,
	op string,
	fn transform,
	keyPath, passphrase string,
	dst io.Writer,
	src io.Reader,
) (block.Stats, error) {
	log := s.log.With("op", op, "key", keyPath)

	k, err := s.store.LoadKey(keyPath, passphrase)
	if err != nil {
		log.Error(ctx, "load key failed", "err", err)
		return block.Stats{}, fmt.Errorf("load key: %w", err)
	}
	log.Debug(ctx, "key loaded", "modulus_bits", k.BitLen())

	st, err := fn(dst, src, k)
	if err != nil {
		log.Error(ctx, op+" failed", "blocks", st.Blocks, "err", err)
		return st, fmt.Errorf("%s: %w", op, err)
	}
	log.Info(ctx, op+" complete", "blocks", st.Blocks, "bytes_in", st.BytesIn, "bytes_out", st.BytesOut)
	return st, nil
}

// Inspect describes the key at keyPath without revealing a private exponent.
func (s *Service) Inspect(ctx context.Context, keyPath, passphrase string) (domain.KeyInfo, error) {
	kf, err := s.store.OpenKey(keyPath, passphrase)
	if err != nil {
		return domain.KeyInfo{}, fmt.Errorf("load key: %w", err)
	}

	k := kf.Key
	e := k.Exponent()
	info := domain.KeyInfo{
		Path:         keyPath,
		Sealed:       kf.Sealed,
		ModulusBits:  k.BitLen(),
		ExponentBits: e.BitLen(),
	}
	if e.BitLen() <= maxShownExponentBits {
		info.Exponent = e.String()
	}
	// a modulus too small for blocks still describes fine
	if in, out, err := block.Sizes(k); err == nil {
		info.PlainBlock, info.CipherBlock = in, out
	}
	s.log.Debug(ctx, "inspected key", "key", keyPath, "modulus_bits", info.ModulusBits)
	return info, nil
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)
