package app

import (
	"rsakit/internal/domain"
	"rsakit/internal/logging"
	ciphersvc "rsakit/internal/services/cipher"
	keygensvc "rsakit/internal/services/keygen"
	"rsakit/internal/store"
)

// Wire bundles the key store and services for the CLI.
type Wire struct {
	Config Config
	Log    logging.Logger
	Keys   domain.KeyStore
	KeyGen domain.KeyService
	Cipher domain.CipherService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log logging.Logger) *Wire {
	if log == nil {
		log = logging.Discard()
	}

	// File-based store
	keyStore := store.NewKeyFileStore()

	// High-level services
	keygen := keygensvc.New(keyStore, log)
	cipher := ciphersvc.New(keyStore, log)

	return &Wire{
		Config: cfg,
		Log:    log,
		Keys:   keyStore,
		KeyGen: keygen,
		Cipher: cipher,
	}
}
