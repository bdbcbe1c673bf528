package store

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"rsakit/internal/util/memzero"
)

const (
	// The current supported version of the sealed key format stored on disk.
	envelopeFormatVersion = 1

	saltBytes = 16
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed key has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")

	// ErrPassphraseRequired is returned when a sealed key is opened without
	// a passphrase.
	ErrPassphraseRequired = errors.New("key file is passphrase protected")

	// ErrUnsupportedVersion is returned for envelopes newer than this build.
	ErrUnsupportedVersion = errors.New("unsupported key envelope version")
)

// KDFParams are the scrypt cost parameters used when sealing.
type KDFParams struct {
	N, R, P int
}

// DefaultKDFParams are the interactive-login scrypt costs.
func DefaultKDFParams() KDFParams { return KDFParams{N: 1 << 15, R: 8, P: 1} }

// envelope is the on-disk JSON structure of a sealed key.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// isSealed reports whether b looks like a JSON envelope rather than key text.
func isSealed(b []byte) bool {
	b = bytes.TrimLeft(b, " \t\r\n")
	return len(b) > 0 && b[0] == '{'
}

// seal encrypts raw under a key derived from passphrase and returns the JSON
// envelope. The salt is bound as associated data.
func seal(passphrase string, raw []byte, kdf KDFParams) ([]byte, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return json.Marshal(envelope{
		V:      envelopeFormatVersion,
		Salt:   salt,
		N:      kdf.N,
		R:      kdf.R,
		P:      kdf.P,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, raw, salt),
	})
}

// open decrypts a JSON envelope produced by seal.
func open(passphrase string, b []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrPassphraseRequired
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
	}
	if env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.V)
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, env.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
