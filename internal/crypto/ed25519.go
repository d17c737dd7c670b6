package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"lattice/internal/domain"
	"lattice/internal/util/memzero"
)

// Ed25519SignatureSize is the width of an Ed25519 signature (64 bytes).
const Ed25519SignatureSize = ed25519.SignatureSize

// GenerateEd25519 returns a new signing key pair as (seed, public).
func GenerateEd25519() (seed domain.Ed25519Seed, pub domain.Ed25519Public, err error) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return seed, pub, err
	}
	copy(seed[:], sk.Seed())
	copy(pub[:], pk)
	memzero.Zero(sk)
	return seed, pub, nil
}

// SignEd25519 signs msg with the key derived from seed. The expanded private
// key is wiped before returning.
func SignEd25519(seed domain.Ed25519Seed, msg []byte) []byte {
	sk := ed25519.NewKeyFromSeed(seed.Slice())
	sig := ed25519.Sign(sk, msg)
	memzero.Zero(sk)
	return sig
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub domain.Ed25519Public, msg, sig []byte) bool {
	if len(sig) != Ed25519SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub.Slice()), msg, sig)
}
