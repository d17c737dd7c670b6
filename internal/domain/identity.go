package domain

// Type selects the cryptographic suite an identity carries. The numeric
// values are protocol constants and appear on the wire.
type Type uint8

const (
	// TypeCurve25519 identities carry only the Curve25519/Ed25519 suite and
	// bind their address through a costly digest search.
	TypeCurve25519 Type = 0
	// TypeP384 identities bundle the Curve25519/Ed25519 suite with a NIST
	// P-384 key pair and bind their address with one compound digest.
	TypeP384 Type = 1
)

// Valid reports whether t is a known identity type.
func (t Type) Valid() bool { return t == TypeCurve25519 || t == TypeP384 }

func (t Type) String() string {
	switch t {
	case TypeCurve25519:
		return "c25519"
	case TypeP384:
		return "p384"
	}
	return "unknown"
}
