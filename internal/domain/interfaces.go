package domain

// IdentityStore persists the local node identity under passphrase
// protection. The blob is the identity's binary marshaling with the private
// key included.
type IdentityStore interface {
	SaveIdentity(passphrase string, blob []byte) error
	LoadIdentity(passphrase string) ([]byte, error)
}
