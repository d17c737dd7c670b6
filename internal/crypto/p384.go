package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"math/big"

	"lattice/internal/domain"
)

// P384SignatureSize is the width of the fixed r‖s signature encoding.
const P384SignatureSize = 96

// ErrInvalidP384Point is returned when a compressed public key does not
// decode to a point on the curve.
var ErrInvalidP384Point = errors.New("invalid P-384 public key")

// GenerateP384 returns a fresh NIST P-384 key pair: the raw 48-byte scalar
// and the SEC1 compressed point.
func GenerateP384() (priv domain.P384Private, pub domain.P384Public, err error) {
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		return priv, pub, err
	}
	key.D.FillBytes(priv[:])
	copy(pub[:], elliptic.MarshalCompressed(elliptic.P384(), key.X, key.Y))
	return priv, pub, nil
}

// SignP384 signs SHA-384(msg) with ECDSA and returns the signature as r and
// s, each left padded to 48 bytes.
func SignP384(priv domain.P384Private, msg []byte) ([]byte, error) {
	d := new(big.Int).SetBytes(priv.Slice())
	key := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: elliptic.P384()},
		D:         d,
	}
	key.X, key.Y = elliptic.P384().ScalarBaseMult(priv.Slice())
	digest := sha512.Sum384(msg)
	r, s, err := ecdsa.Sign(rand.Reader, key, digest[:])
	if err != nil {
		return nil, err
	}
	sig := make([]byte, P384SignatureSize)
	r.FillBytes(sig[:P384SignatureSize/2])
	s.FillBytes(sig[P384SignatureSize/2:])
	return sig, nil
}

// VerifyP384 checks an r‖s signature over SHA-384(msg).
func VerifyP384(pub domain.P384Public, msg, sig []byte) bool {
	if len(sig) != P384SignatureSize {
		return false
	}
	x, y := elliptic.UnmarshalCompressed(elliptic.P384(), pub.Slice())
	if x == nil {
		return false
	}
	key := &ecdsa.PublicKey{Curve: elliptic.P384(), X: x, Y: y}
	digest := sha512.Sum384(msg)
	r := new(big.Int).SetBytes(sig[:P384SignatureSize/2])
	s := new(big.Int).SetBytes(sig[P384SignatureSize/2:])
	return ecdsa.Verify(key, digest[:], r, s)
}

// DHP384 computes the shared x coordinate between priv and pub, left padded
// to 48 bytes.
func DHP384(priv domain.P384Private, pub domain.P384Public) (out [48]byte, err error) {
	x, y := elliptic.UnmarshalCompressed(elliptic.P384(), pub.Slice())
	if x == nil {
		return out, ErrInvalidP384Point
	}
	sx, _ := elliptic.P384().ScalarMult(x, y, priv.Slice())
	if sx.Sign() == 0 {
		return out, ErrInvalidP384Point
	}
	sx.FillBytes(out[:])
	return out, nil
}
