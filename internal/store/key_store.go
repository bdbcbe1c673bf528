package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"rsakit/internal/domain"
	"rsakit/internal/rsa"
	"rsakit/internal/util/memzero"
)

const (
	PublicKeyFile  = "key.public"
	PrivateKeyFile = "key.private"
)

// KeyFileStore persists key halves to disk.
type KeyFileStore struct {
	kdf KDFParams
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore sealing with the default scrypt costs.
func NewKeyFileStore() *KeyFileStore {
	return &KeyFileStore{kdf: DefaultKDFParams()}
}

// NewKeyFileStoreWithKDF returns a KeyFileStore sealing with kdf.
func NewKeyFileStoreWithKDF(kdf KDFParams) *KeyFileStore {
	return &KeyFileStore{kdf: kdf}
}

// SaveKeyPair writes key.public (0644) and key.private (0600) into dir,
// creating dir if needed.
func (s *KeyFileStore) SaveKeyPair(dir, passphrase string, kp rsa.KeyPair) (domain.KeyPaths, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return domain.KeyPaths{}, err
	}
	paths := domain.KeyPaths{
		Public:  filepath.Join(dir, PublicKeyFile),
		Private: filepath.Join(dir, PrivateKeyFile),
	}

	pub, err := kp.Public.MarshalText()
	if err != nil {
		return domain.KeyPaths{}, err
	}
	if err := writeFile(paths.Public, pub, 0o644); err != nil {
		return domain.KeyPaths{}, fmt.Errorf("write public key: %w", err)
	}

	priv, err := kp.Private.MarshalText()
	if err != nil {
		return domain.KeyPaths{}, err
	}
	defer memzero.Zero(priv)

	out := priv
	if passphrase != "" {
		if out, err = seal(passphrase, priv, s.kdf); err != nil {
			return domain.KeyPaths{}, fmt.Errorf("seal private key: %w", err)
		}
	}
	if err := writeFile(paths.Private, out, 0o600); err != nil {
		return domain.KeyPaths{}, fmt.Errorf("write private key: %w", err)
	}
	return paths, nil
}

// LoadKey reads the key at path, opening it with passphrase if sealed.
func (s *KeyFileStore) LoadKey(path, passphrase string) (rsa.Key, error) {
	kf, err := s.OpenKey(path, passphrase)
	if err != nil {
		return rsa.Key{}, err
	}
	return kf.Key, nil
}

// OpenKey reads the key at path once and reports whether it was sealed.
func (s *KeyFileStore) OpenKey(path, passphrase string) (domain.KeyFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(path)
	if err != nil {
		return domain.KeyFile{}, err
	}
	sealed := isSealed(b)
	if sealed {
		pt, err := open(passphrase, b)
		if err != nil {
			return domain.KeyFile{}, fmt.Errorf("%s: %w", path, err)
		}
		defer memzero.Zero(pt)
		b = pt
	}
	k, err := rsa.ParseKey(b)
	if err != nil {
		return domain.KeyFile{}, fmt.Errorf("%s: %w", path, err)
	}
	return domain.KeyFile{Key: k, Sealed: sealed}, nil
}

// IsSealed reports whether the key file at path is passphrase protected.
func (s *KeyFileStore) IsSealed(path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(path)
	if err != nil {
		return false, err
	}
	return isSealed(b), nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
