package domain

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
)

// FingerprintHashSize is the digest width of a fingerprint (SHA-384).
const FingerprintHashSize = 48

// Fingerprint identifies an identity's public key material: a wide digest
// plus the address bound to it. It is the equality and ordering key for the
// whole identity; the zero value matches only another zero value.
type Fingerprint struct {
	Address Address
	Hash    [FingerprintHashSize]byte
}

// Equal reports byte equality of both digest and address.
func (f Fingerprint) Equal(other Fingerprint) bool { return f == other }

// Less orders fingerprints lexicographically by digest, with the address
// breaking ties.
func (f Fingerprint) Less(other Fingerprint) bool {
	if c := bytes.Compare(f.Hash[:], other.Hash[:]); c != 0 {
		return c < 0
	}
	return f.Address < other.Address
}

// HashCode returns a fast non-cryptographic key for maps and sets.
func (f Fingerprint) HashCode() uint64 {
	return binary.BigEndian.Uint64(f.Hash[:8])
}

// String renders the address followed by the full digest in hex.
func (f Fingerprint) String() string {
	return f.Address.String() + "-" + hex.EncodeToString(f.Hash[:])
}
