package identity

import (
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/hkdf"

	"lattice/internal/crypto"
	"lattice/internal/domain"
	"lattice/internal/util/memzero"
)

// agreementInfo labels the HKDF expansion of raw shared secrets.
var agreementInfo = []byte("lattice agreement v0")

// Agree derives the shared secret between id and other; id must hold its
// private key. Curve25519 and P-384 identities share the Curve25519
// exchange, so mixed pairs interoperate at that strength. Two P-384
// identities fold a second, independent P-384 exchange into the same key, so
// compromising either curve alone is not enough.
//
// Agree(a, b) and Agree(b, a) produce the same key.
func (id *Identity) Agree(other *Identity) (domain.SecretKey, error) {
	var key domain.SecretKey
	if other == nil || id.IsNil() || other.IsNil() {
		return key, ErrNilIdentity
	}
	if !id.typ.Valid() || !other.typ.Valid() {
		return key, ErrUnsupportedType
	}
	if !id.hasPrivate {
		return key, ErrMissingPrivateKey
	}

	raw, err := crypto.DH(id.xPriv, other.xPub)
	if err != nil {
		return key, err
	}
	ikm := make([]byte, 0, len(raw)+domain.SecretKeySize)
	ikm = append(ikm, raw[:]...)
	memzero.Zero(raw[:])

	if id.typ == domain.TypeP384 && other.typ == domain.TypeP384 {
		shared, err := crypto.DHP384(id.pPriv, other.pPub)
		if err != nil {
			memzero.Zero(ikm)
			return key, err
		}
		ikm = append(ikm, shared[:]...)
		memzero.Zero(shared[:])
	}

	kdf := hkdf.New(sha512.New384, ikm, nil, agreementInfo)
	_, err = io.ReadFull(kdf, key[:])
	memzero.Zero(ikm)
	if err != nil {
		return domain.SecretKey{}, err
	}
	return key, nil
}
