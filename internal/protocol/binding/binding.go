package binding

import (
	"errors"

	"lattice/internal/crypto"
	"lattice/internal/domain"
)

const (
	// difficultyThreshold bounds the first digest byte for a Curve25519
	// binding. Roughly one candidate nonce in fifteen passes.
	difficultyThreshold = 17
	// addressOffset is where the address sits in the 64-byte search digest.
	addressOffset = crypto.MemoryHardDigestSize - domain.AddressLength
)

// ErrSearchExhausted is returned when no nonce in the single-byte space
// produces an acceptable digest. The caller regenerates its key pair and
// retries; the odds of hitting this are below 2^-24.
var ErrSearchExhausted = errors.New("address search exhausted nonce space")

// SearchCurve25519 finds a nonce binding an acceptable address to the
// Curve25519/Ed25519 public keys. This is the expensive half of the cost
// asymmetry; expect many memory-hard digest evaluations.
func SearchCurve25519(xPub domain.X25519Public, edPub domain.Ed25519Public) (domain.Address, byte, error) {
	material := searchMaterial(xPub, edPub, 0)
	for nonce := 0; nonce <= 0xff; nonce++ {
		material[len(material)-1] = byte(nonce)
		digest := crypto.MemoryHardDigest(material)
		if digest[0] >= difficultyThreshold {
			continue
		}
		addr := domain.AddressFromBytes(digest[addressOffset:])
		if !addr.IsReserved() {
			return addr, byte(nonce), nil
		}
	}
	return 0, 0, ErrSearchExhausted
}

// ValidateCurve25519 recomputes the binding digest for the stored nonce and
// checks that it still clears the difficulty threshold and yields addr.
// One memory-hard digest evaluation.
func ValidateCurve25519(addr domain.Address, nonce byte, xPub domain.X25519Public, edPub domain.Ed25519Public) bool {
	digest := crypto.MemoryHardDigest(searchMaterial(xPub, edPub, nonce))
	if digest[0] >= difficultyThreshold {
		return false
	}
	got := domain.AddressFromBytes(digest[addressOffset:])
	return !got.IsReserved() && got == addr
}

// CompoundDigest hashes all public key material of a P-384 identity in one
// SHA-384 pass. The same digest serves as the identity's fingerprint.
func CompoundDigest(nonce byte, xPub domain.X25519Public, edPub domain.Ed25519Public, pPub domain.P384Public) [domain.FingerprintHashSize]byte {
	return crypto.SHA384([]byte{nonce}, xPub.Slice(), edPub.Slice(), pPub.Slice())
}

// SearchP384 derives the address of a P-384 identity. There is no difficulty
// requirement; the nonce only steps past reserved addresses, so this almost
// always costs a single digest.
func SearchP384(xPub domain.X25519Public, edPub domain.Ed25519Public, pPub domain.P384Public) (domain.Address, byte, [domain.FingerprintHashSize]byte, error) {
	for nonce := 0; nonce <= 0xff; nonce++ {
		digest := CompoundDigest(byte(nonce), xPub, edPub, pPub)
		addr := domain.AddressFromBytes(digest[:domain.AddressLength])
		if !addr.IsReserved() {
			return addr, byte(nonce), digest, nil
		}
	}
	var zero [domain.FingerprintHashSize]byte
	return 0, 0, zero, ErrSearchExhausted
}

// ValidateP384 recomputes the compound digest and checks the stored address
// against it. One fast digest evaluation.
func ValidateP384(addr domain.Address, nonce byte, xPub domain.X25519Public, edPub domain.Ed25519Public, pPub domain.P384Public) bool {
	digest := CompoundDigest(nonce, xPub, edPub, pPub)
	got := domain.AddressFromBytes(digest[:domain.AddressLength])
	return !got.IsReserved() && got == addr
}

// FingerprintCurve25519 is the cheap public-key digest of a Curve25519
// identity. It deliberately differs from the binding digest: fingerprinting
// has to stay fast.
func FingerprintCurve25519(xPub domain.X25519Public, edPub domain.Ed25519Public) [domain.FingerprintHashSize]byte {
	return crypto.SHA384(xPub.Slice(), edPub.Slice())
}

func searchMaterial(xPub domain.X25519Public, edPub domain.Ed25519Public, nonce byte) []byte {
	material := make([]byte, 0, len(xPub)+len(edPub)+1)
	material = append(material, xPub.Slice()...)
	material = append(material, edPub.Slice()...)
	material = append(material, nonce)
	return material
}
