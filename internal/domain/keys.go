package domain

import "fmt"

// ------------- X25519 -------------

type X25519Private [32]byte
type X25519Public [32]byte

func (k X25519Private) Slice() []byte { return k[:] }
func (k X25519Public) Slice() []byte  { return k[:] }

func MustX25519Private(b []byte) X25519Private {
	if len(b) != 32 {
		panic(fmt.Errorf("X25519 private: want 32 bytes, got %d", len(b)))
	}
	var out X25519Private
	copy(out[:], b)
	return out
}

func MustX25519Public(b []byte) X25519Public {
	if len(b) != 32 {
		panic(fmt.Errorf("X25519 public: want 32 bytes, got %d", len(b)))
	}
	var out X25519Public
	copy(out[:], b)
	return out
}

// ------------- Ed25519 -------------

// Ed25519Seed is the 32-byte seed form of an Ed25519 private key. The
// expanded key is derived on demand and wiped after use.
type Ed25519Seed [32]byte
type Ed25519Public [32]byte

func (k Ed25519Seed) Slice() []byte   { return k[:] }
func (k Ed25519Public) Slice() []byte { return k[:] }

// ------------- NIST P-384 -------------

// P384Private is the raw 48-byte scalar.
type P384Private [48]byte

// P384Public is the SEC1 compressed point (49 bytes).
type P384Public [49]byte

func (k P384Private) Slice() []byte { return k[:] }
func (k P384Public) Slice() []byte  { return k[:] }

// ------------- Shared secrets -------------

// SecretKeySize is the width of a key produced by identity agreement.
const SecretKeySize = 48

// SecretKey is the uniform-length secret two identities agree on.
type SecretKey [SecretKeySize]byte

func (k SecretKey) Slice() []byte { return k[:] }
