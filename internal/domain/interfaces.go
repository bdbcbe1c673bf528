package domain

import (
	"context"
	"io"

	"rsakit/internal/block"
	"rsakit/internal/rsa"
)

// KeyStore persists key halves as files.
type KeyStore interface {
	// SaveKeyPair writes both halves into dir. A non-empty passphrase seals
	// the private half.
	SaveKeyPair(dir, passphrase string, kp rsa.KeyPair) (KeyPaths, error)
	// LoadKey reads a key file, opening a sealed file with passphrase.
	LoadKey(path, passphrase string) (rsa.Key, error)
	// OpenKey is LoadKey that also reports whether the file was sealed.
	OpenKey(path, passphrase string) (KeyFile, error)
	// IsSealed reports whether the file at path is passphrase protected.
	IsSealed(path string) (bool, error)
}

// KeyPaths names the files written by KeyStore.SaveKeyPair.
type KeyPaths struct {
	Public  string
	Private string
}

// KeyFile is a key together with how it was stored.
type KeyFile struct {
	Key    rsa.Key
	Sealed bool
}

// GenerateRequest carries the parameters of one key-pair generation.
type GenerateRequest struct {
	Dir         string
	Passphrase  string
	Bits        int
	Exponent    int64
	Rounds      int
	MaxAttempts int
}

// GenerateResult describes a freshly stored key pair.
type GenerateResult struct {
	Paths       KeyPaths
	ModulusBits int
	Attempts    int
}

// KeyService generates and persists key pairs.
type KeyService interface {
	GenerateKeyPair(ctx context.Context, req GenerateRequest) (GenerateResult, error)
}

// CipherService runs the block transform with a key loaded from disk.
type CipherService interface {
	Encrypt(ctx context.Context, keyPath, passphrase string, dst io.Writer, src io.Reader) (block.Stats, error)
	Decrypt(ctx context.Context, keyPath, passphrase string, dst io.Writer, src io.Reader) (block.Stats, error)
	Inspect(ctx context.Context, keyPath, passphrase string) (KeyInfo, error)
}

// KeyInfo is the shareable description of a key file. Exponent is only
// filled for short exponents, which are public ones in practice; a private
// exponent is the size of the modulus and is never echoed.
type KeyInfo struct {
	Path         string
	Sealed       bool
	ModulusBits  int
	ExponentBits int
	Exponent     string
	PlainBlock   int
	CipherBlock  int
}
