package identity

import (
	"errors"

	"lattice/internal/crypto"
	"lattice/internal/domain"
	"lattice/internal/protocol/binding"
	"lattice/internal/util/memzero"
)

// Widths of the concatenated key blobs carried by an identity.
const (
	publicBlobC25519  = 1 + 32 + 32 // nonce ‖ X25519 ‖ Ed25519
	publicBlobP384    = publicBlobC25519 + 49
	privateBlobC25519 = 32 + 32 // X25519 ‖ Ed25519 seed
	privateBlobP384   = privateBlobC25519 + 48

	// SignatureSizeMax bounds any signature an identity produces.
	SignatureSizeMax = crypto.P384SignatureSize
)

var (
	// ErrUnsupportedType is returned when an operation meets an identity
	// type it does not know.
	ErrUnsupportedType = errors.New("unsupported identity type")
	// ErrMissingPrivateKey is returned by operations that need the private
	// half of the key material.
	ErrMissingPrivateKey = errors.New("identity has no private key")
	// ErrNilIdentity is returned when an operation needs a non-nil identity.
	ErrNilIdentity = errors.New("nil identity")
)

// Identity is a self-certifying node identity: key material plus the short
// address bound to it. The zero value is the nil identity.
type Identity struct {
	addr domain.Address
	fp   domain.Fingerprint
	typ  domain.Type

	nonce byte
	xPub  domain.X25519Public
	edPub domain.Ed25519Public
	pPub  domain.P384Public

	xPriv  domain.X25519Private
	edSeed domain.Ed25519Seed
	pPriv  domain.P384Private

	hasPrivate bool
}

// Generate replaces id with a fresh identity of type t. For TypeCurve25519
// this runs the address search and can block for seconds of pure
// computation.
func (id *Identity) Generate(t domain.Type) error {
	if !t.Valid() {
		return ErrUnsupportedType
	}
	id.Zero()
	for {
		xPriv, xPub, err := crypto.GenerateX25519()
		if err != nil {
			return err
		}
		edSeed, edPub, err := crypto.GenerateEd25519()
		if err != nil {
			memzero.Zero(xPriv[:])
			return err
		}

		switch t {
		case domain.TypeCurve25519:
			addr, nonce, err := binding.SearchCurve25519(xPub, edPub)
			if err != nil {
				// Nonce space exhausted; throw the keys away and retry.
				memzero.ZeroAll(xPriv[:], edSeed[:])
				continue
			}
			id.addr = addr
			id.nonce = nonce
			id.fp = domain.Fingerprint{
				Address: addr,
				Hash:    binding.FingerprintCurve25519(xPub, edPub),
			}
		case domain.TypeP384:
			pPriv, pPub, err := crypto.GenerateP384()
			if err != nil {
				memzero.ZeroAll(xPriv[:], edSeed[:])
				return err
			}
			addr, nonce, digest, err := binding.SearchP384(xPub, edPub, pPub)
			if err != nil {
				memzero.ZeroAll(xPriv[:], edSeed[:], pPriv[:])
				continue
			}
			id.addr = addr
			id.nonce = nonce
			id.fp = domain.Fingerprint{Address: addr, Hash: digest}
			id.pPub = pPub
			id.pPriv = pPriv
			memzero.Zero(pPriv[:])
		}

		id.typ = t
		id.xPub = xPub
		id.edPub = edPub
		id.xPriv = xPriv
		id.edSeed = edSeed
		id.hasPrivate = true
		memzero.ZeroAll(xPriv[:], edSeed[:])
		return nil
	}
}

// LocallyValidate recomputes the address binding from the stored public
// keys. Call it once when accepting an identity from an untrusted source;
// for Curve25519 identities it costs one memory-hard digest.
func (id *Identity) LocallyValidate() bool {
	if !id.addr.IsSet() {
		return false
	}
	switch id.typ {
	case domain.TypeCurve25519:
		return binding.ValidateCurve25519(id.addr, id.nonce, id.xPub, id.edPub)
	case domain.TypeP384:
		return binding.ValidateP384(id.addr, id.nonce, id.xPub, id.edPub, id.pPub)
	}
	return false
}

// Address returns the bound 40-bit address; zero for the nil identity.
func (id *Identity) Address() domain.Address { return id.addr }

// Type returns the identity's cryptographic suite.
func (id *Identity) Type() domain.Type { return id.typ }

// HasPrivate reports whether the identity carries its private key.
func (id *Identity) HasPrivate() bool { return id.hasPrivate }

// Fingerprint returns the digest identifying the public key material.
func (id *Identity) Fingerprint() domain.Fingerprint { return id.fp }

// IsNil reports whether id is the nil identity.
func (id *Identity) IsNil() bool { return !id.addr.IsSet() }

// Equal reports whether both identities have the same fingerprint. Private
// key material never participates.
func (id *Identity) Equal(other *Identity) bool { return id.fp.Equal(other.fp) }

// Less orders identities by fingerprint.
func (id *Identity) Less(other *Identity) bool { return id.fp.Less(other.fp) }

// HashCode returns a fast map/set key derived from the fingerprint.
func (id *Identity) HashCode() uint64 { return id.fp.HashCode() }

// HashWithPrivate digests both halves of the key material. A nil identity or
// one without a private key yields all zeros.
func (id *Identity) HashWithPrivate() (out [domain.FingerprintHashSize]byte) {
	if id.IsNil() || !id.hasPrivate {
		return
	}
	switch id.typ {
	case domain.TypeCurve25519:
		out = crypto.SHA384([]byte{id.nonce}, id.xPub.Slice(), id.edPub.Slice(),
			id.xPriv.Slice(), id.edSeed.Slice())
	case domain.TypeP384:
		out = crypto.SHA384([]byte{id.nonce}, id.xPub.Slice(), id.edPub.Slice(), id.pPub.Slice(),
			id.xPriv.Slice(), id.edSeed.Slice(), id.pPriv.Slice())
	}
	return
}

// Sign signs data with the identity's signing key: Ed25519 (64 bytes) for
// Curve25519 identities, ECDSA P-384 (96 bytes) for P-384 identities.
func (id *Identity) Sign(data []byte) ([]byte, error) {
	if id.IsNil() {
		return nil, ErrNilIdentity
	}
	if !id.hasPrivate {
		return nil, ErrMissingPrivateKey
	}
	switch id.typ {
	case domain.TypeCurve25519:
		return crypto.SignEd25519(id.edSeed, data), nil
	case domain.TypeP384:
		return crypto.SignP384(id.pPriv, data)
	}
	return nil, ErrUnsupportedType
}

// Verify reports whether sig is a valid signature over data by this
// identity. A signature of the wrong length for the identity's type fails
// without any curve arithmetic.
func (id *Identity) Verify(data, sig []byte) bool {
	if id.IsNil() {
		return false
	}
	switch id.typ {
	case domain.TypeCurve25519:
		return crypto.VerifyEd25519(id.edPub, data, sig)
	case domain.TypeP384:
		return crypto.VerifyP384(id.pPub, data, sig)
	}
	return false
}

// Zero wipes the private key material and resets id to the nil identity.
func (id *Identity) Zero() {
	memzero.ZeroAll(id.xPriv[:], id.edSeed[:], id.pPriv[:])
	*id = Identity{}
}
