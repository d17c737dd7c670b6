package keystore

import (
	"fmt"
	"unicode"

	"lattice/internal/domain"
	"lattice/internal/identity"
	"lattice/internal/util/memzero"
)

// minPassphraseLength defines the minimum number of characters required for
// a passphrase.
const minPassphraseLength = 12

// ErrWeakPassphrase is returned when the passphrase fails the strength
// policy.
var ErrWeakPassphrase = fmt.Errorf(
	"passphrase is too weak (must be at least %d characters and include upper, lower, "+
		"number, and symbol)",
	minPassphraseLength,
)

// Service creates and loads the node identity through a passphrase-protected
// store. The stored blob is the identity's binary form with the private key
// included.
type Service struct {
	store domain.IdentityStore
}

// New returns a keystore service backed by the given store.
func New(s domain.IdentityStore) *Service { return &Service{store: s} }

// Generate creates a new identity of type t, saves it encrypted with the
// passphrase, and returns it. The caller owns the returned identity and
// should Zero it when done.
func (s *Service) Generate(t domain.Type, passphrase string) (identity.Identity, error) {
	if !isSecurePassphrase(passphrase) {
		return identity.Identity{}, ErrWeakPassphrase
	}

	var id identity.Identity
	if err := id.Generate(t); err != nil {
		return identity.Identity{}, err
	}
	blob, err := id.Marshal(true)
	if err != nil {
		id.Zero()
		return identity.Identity{}, err
	}
	err = s.store.SaveIdentity(passphrase, blob)
	memzero.Zero(blob)
	if err != nil {
		id.Zero()
		return identity.Identity{}, err
	}
	return id, nil
}

// Load decrypts and returns the stored identity.
func (s *Service) Load(passphrase string) (identity.Identity, error) {
	blob, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return identity.Identity{}, err
	}
	var id identity.Identity
	_, err = id.Unmarshal(blob)
	memzero.Zero(blob)
	if err != nil {
		return identity.Identity{}, err
	}
	return id, nil
}

// Fingerprint loads the stored identity and returns its fingerprint.
func (s *Service) Fingerprint(passphrase string) (domain.Fingerprint, error) {
	id, err := s.Load(passphrase)
	if err != nil {
		return domain.Fingerprint{}, err
	}
	fp := id.Fingerprint()
	id.Zero()
	return fp, nil
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
