package identity

import (
	"encoding/hex"
	"errors"
	"strings"

	"lattice/internal/domain"
	"lattice/internal/protocol/binding"
	"lattice/internal/util/memzero"
)

// MarshalSizeMax bounds the binary form of any identity.
const MarshalSizeMax = domain.AddressLength + 1 + publicBlobP384 + 1 + privateBlobP384

// ErrParse is returned for structurally malformed text or binary input.
// Structure only: a parsed identity still needs LocallyValidate before its
// address can be trusted.
var ErrParse = errors.New("malformed identity encoding")

// String returns the public text form, or the empty string for the nil
// identity.
func (id *Identity) String() string { return id.StringWithPrivate(false) }

// StringWithPrivate renders the canonical colon-separated text form:
// address, type tag, hex key material. Private segments are appended last,
// and only when asked for and present, so a parser for the Curve25519 layout
// still reads the address/type/key prefix of a P-384 identity.
func (id *Identity) StringWithPrivate(includePrivate bool) string {
	if id.IsNil() || !id.typ.Valid() {
		return ""
	}
	withPrivate := includePrivate && id.hasPrivate

	var b strings.Builder
	b.WriteString(id.addr.String())
	b.WriteByte(':')
	b.WriteByte('0' + byte(id.typ))
	b.WriteByte(':')
	b.WriteString(hex.EncodeToString(id.legacyPublicBlob()))
	if id.typ == domain.TypeP384 {
		b.WriteByte(':')
		b.WriteString(hex.EncodeToString(id.pPub.Slice()))
	}
	if withPrivate {
		b.WriteByte(':')
		b.WriteString(hex.EncodeToString(id.legacyPrivateBlob()))
		if id.typ == domain.TypeP384 {
			b.WriteByte(':')
			b.WriteString(hex.EncodeToString(id.pPriv.Slice()))
		}
	}
	return b.String()
}

// ParseString replaces id with the identity encoded in s. Only structure is
// checked; call LocallyValidate to confirm the address binding.
func (id *Identity) ParseString(s string) error {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) < 3 {
		return ErrParse
	}
	addr, err := domain.ParseAddress(fields[0])
	if err != nil {
		return ErrParse
	}

	switch fields[1] {
	case "0":
		if len(fields) != 3 && len(fields) != 4 {
			return ErrParse
		}
		pub, err := decodeHexField(fields[2], publicBlobC25519)
		if err != nil {
			return ErrParse
		}
		var priv []byte
		if len(fields) == 4 {
			if priv, err = decodeHexField(fields[3], privateBlobC25519); err != nil {
				return ErrParse
			}
		}
		id.Zero()
		id.typ = domain.TypeCurve25519
		id.addr = addr
		id.setLegacyPublicBlob(pub)
		if priv != nil {
			id.setLegacyPrivateBlob(priv)
			memzero.Zero(priv)
		}

	case "1":
		if len(fields) != 4 && len(fields) != 6 {
			return ErrParse
		}
		pub, err := decodeHexField(fields[2], publicBlobC25519)
		if err != nil {
			return ErrParse
		}
		pPub, err := decodeHexField(fields[3], publicBlobP384-publicBlobC25519)
		if err != nil {
			return ErrParse
		}
		var priv, pPriv []byte
		if len(fields) == 6 {
			if priv, err = decodeHexField(fields[4], privateBlobC25519); err != nil {
				return ErrParse
			}
			if pPriv, err = decodeHexField(fields[5], privateBlobP384-privateBlobC25519); err != nil {
				memzero.Zero(priv)
				return ErrParse
			}
		}
		id.Zero()
		id.typ = domain.TypeP384
		id.addr = addr
		id.setLegacyPublicBlob(pub)
		copy(id.pPub[:], pPub)
		if priv != nil {
			id.setLegacyPrivateBlob(priv)
			copy(id.pPriv[:], pPriv)
			memzero.ZeroAll(priv, pPriv)
		}

	default:
		return ErrParse
	}

	id.recomputeFingerprint()
	return nil
}

// Marshal encodes the identity into its fixed binary layout:
//
//	address (5, big endian) ‖ type (1) ‖ nonce (1) ‖ X25519 public (32) ‖
//	Ed25519 public (32) ‖ [P-384 public (49)] ‖ private length (1) ‖
//	[X25519 private (32) ‖ Ed25519 seed (32) ‖ [P-384 private (48)]]
//
// The private blob is present only when includePrivate is set and the
// identity holds one; its length byte is 0x00 otherwise.
func (id *Identity) Marshal(includePrivate bool) ([]byte, error) {
	if id.IsNil() {
		return nil, ErrNilIdentity
	}
	if !id.typ.Valid() {
		return nil, ErrUnsupportedType
	}

	buf := make([]byte, 0, MarshalSizeMax)
	var a [domain.AddressLength]byte
	id.addr.PutBytes(a[:])
	buf = append(buf, a[:]...)
	buf = append(buf, byte(id.typ))
	buf = append(buf, id.legacyPublicBlob()...)
	if id.typ == domain.TypeP384 {
		buf = append(buf, id.pPub.Slice()...)
	}
	if includePrivate && id.hasPrivate {
		priv := id.legacyPrivateBlob()
		if id.typ == domain.TypeP384 {
			priv = append(priv, id.pPriv.Slice()...)
		}
		buf = append(buf, byte(len(priv)))
		buf = append(buf, priv...)
		memzero.Zero(priv)
	} else {
		buf = append(buf, 0)
	}
	return buf, nil
}

// Unmarshal decodes the binary layout produced by Marshal and returns the
// number of bytes consumed. Truncated input, an unknown type byte, or an
// impossible private length byte yield ErrParse without reading past data.
func (id *Identity) Unmarshal(data []byte) (int, error) {
	const headerLen = domain.AddressLength + 1
	if len(data) < headerLen {
		return 0, ErrParse
	}
	addr := domain.AddressFromBytes(data)
	if !addr.IsSet() {
		return 0, ErrParse
	}
	typ := domain.Type(data[domain.AddressLength])
	if !typ.Valid() {
		return 0, ErrParse
	}

	pubLen, privLen := publicBlobC25519, privateBlobC25519
	if typ == domain.TypeP384 {
		pubLen, privLen = publicBlobP384, privateBlobP384
	}

	n := headerLen
	if len(data) < n+pubLen+1 {
		return 0, ErrParse
	}
	pub := data[n : n+pubLen]
	n += pubLen

	var priv []byte
	switch int(data[n]) {
	case 0:
		n++
	case privLen:
		n++
		if len(data) < n+privLen {
			return 0, ErrParse
		}
		priv = data[n : n+privLen]
		n += privLen
	default:
		return 0, ErrParse
	}

	id.Zero()
	id.typ = typ
	id.addr = addr
	id.setLegacyPublicBlob(pub[:publicBlobC25519])
	if typ == domain.TypeP384 {
		copy(id.pPub[:], pub[publicBlobC25519:])
	}
	if priv != nil {
		id.setLegacyPrivateBlob(priv[:privateBlobC25519])
		if typ == domain.TypeP384 {
			copy(id.pPriv[:], priv[privateBlobC25519:])
		}
	}
	id.recomputeFingerprint()
	return n, nil
}

// legacyPublicBlob concatenates nonce ‖ X25519 public ‖ Ed25519 public.
func (id *Identity) legacyPublicBlob() []byte {
	b := make([]byte, 0, publicBlobC25519)
	b = append(b, id.nonce)
	b = append(b, id.xPub.Slice()...)
	b = append(b, id.edPub.Slice()...)
	return b
}

// legacyPrivateBlob concatenates X25519 private ‖ Ed25519 seed. Callers wipe
// the returned slice.
func (id *Identity) legacyPrivateBlob() []byte {
	b := make([]byte, 0, privateBlobP384)
	b = append(b, id.xPriv.Slice()...)
	b = append(b, id.edSeed.Slice()...)
	return b
}

func (id *Identity) setLegacyPublicBlob(b []byte) {
	id.nonce = b[0]
	copy(id.xPub[:], b[1:33])
	copy(id.edPub[:], b[33:65])
}

func (id *Identity) setLegacyPrivateBlob(b []byte) {
	copy(id.xPriv[:], b[:32])
	copy(id.edSeed[:], b[32:64])
	id.hasPrivate = true
}

func (id *Identity) recomputeFingerprint() {
	switch id.typ {
	case domain.TypeCurve25519:
		id.fp = domain.Fingerprint{
			Address: id.addr,
			Hash:    binding.FingerprintCurve25519(id.xPub, id.edPub),
		}
	case domain.TypeP384:
		id.fp = domain.Fingerprint{
			Address: id.addr,
			Hash:    binding.CompoundDigest(id.nonce, id.xPub, id.edPub, id.pPub),
		}
	}
}

// decodeHexField decodes a hex field and checks its decoded width.
func decodeHexField(s string, want int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != want {
		return nil, ErrParse
	}
	return b, nil
}
