package identity_test

import (
	"testing"

	"lattice/internal/domain"
	"lattice/internal/identity"
)

// generated caches one identity per type so the expensive address search
// runs once per test binary.
var generated = map[domain.Type]*identity.Identity{}

func makeIdentity(t *testing.T, typ domain.Type) *identity.Identity {
	t.Helper()
	if id, ok := generated[typ]; ok {
		return id
	}
	var id identity.Identity
	if err := id.Generate(typ); err != nil {
		t.Fatalf("Generate(%v): %v", typ, err)
	}
	generated[typ] = &id
	return &id
}

// freshIdentity always runs a full generation.
func freshIdentity(t *testing.T, typ domain.Type) *identity.Identity {
	t.Helper()
	var id identity.Identity
	if err := id.Generate(typ); err != nil {
		t.Fatalf("Generate(%v): %v", typ, err)
	}
	return &id
}

func TestGenerate_Validates(t *testing.T) {
	for _, typ := range []domain.Type{domain.TypeCurve25519, domain.TypeP384} {
		id := makeIdentity(t, typ)
		if id.IsNil() {
			t.Fatalf("%v: generated identity is nil", typ)
		}
		if !id.HasPrivate() {
			t.Fatalf("%v: generated identity has no private key", typ)
		}
		if id.Type() != typ {
			t.Fatalf("%v: wrong type %v", typ, id.Type())
		}
		if !id.Address().IsSet() || id.Address().IsReserved() {
			t.Fatalf("%v: unusable address %s", typ, id.Address())
		}
		if !id.LocallyValidate() {
			t.Fatalf("%v: fresh identity failed validation", typ)
		}
		if id.Fingerprint().Address != id.Address() {
			t.Fatalf("%v: fingerprint does not embed the address", typ)
		}
	}
}

func TestGenerate_UnsupportedType(t *testing.T) {
	var id identity.Identity
	if err := id.Generate(domain.Type(9)); err != identity.ErrUnsupportedType {
		t.Fatalf("want ErrUnsupportedType, got %v", err)
	}
	if !id.IsNil() {
		t.Fatal("failed generate left a non-nil identity")
	}
}

func TestLocallyValidate_RejectsTamperedKey(t *testing.T) {
	for _, typ := range []domain.Type{domain.TypeCurve25519, domain.TypeP384} {
		id := makeIdentity(t, typ)

		// Round trip through text, flip one public key byte, reparse.
		s := id.StringWithPrivate(false)
		raw := []byte(s)
		// Field 2 is the hex public blob; flip a digit inside it.
		idx := len(id.Address().String()) + len(":0:") + 6
		if raw[idx] == 'f' {
			raw[idx] = '0'
		} else {
			raw[idx] = 'f'
		}

		var tampered identity.Identity
		if err := tampered.ParseString(string(raw)); err != nil {
			t.Fatalf("%v: tampered string no longer parses: %v", typ, err)
		}
		if tampered.LocallyValidate() {
			t.Fatalf("%v: tampered public key passed validation", typ)
		}
	}
}

func TestSignVerify(t *testing.T) {
	msg := []byte("the quick brown fox")
	for _, typ := range []domain.Type{domain.TypeCurve25519, domain.TypeP384} {
		id := makeIdentity(t, typ)

		sig, err := id.Sign(msg)
		if err != nil {
			t.Fatalf("%v: Sign: %v", typ, err)
		}
		if len(sig) == 0 || len(sig) > identity.SignatureSizeMax {
			t.Fatalf("%v: signature size %d out of range", typ, len(sig))
		}
		if !id.Verify(msg, sig) {
			t.Fatalf("%v: own signature did not verify", typ)
		}
		if id.Verify([]byte("different message"), sig) {
			t.Fatalf("%v: signature verified for a different message", typ)
		}
		if id.Verify(msg, sig[:len(sig)-1]) {
			t.Fatalf("%v: truncated signature verified", typ)
		}
		if id.Verify(msg, nil) {
			t.Fatalf("%v: empty signature verified", typ)
		}

		bad := append([]byte(nil), sig...)
		bad[3] ^= 1
		if id.Verify(msg, bad) {
			t.Fatalf("%v: corrupted signature verified", typ)
		}
	}
}

func TestVerify_MismatchedIdentity(t *testing.T) {
	msg := []byte("hello")
	a := makeIdentity(t, domain.TypeCurve25519)
	b := makeIdentity(t, domain.TypeP384)

	sig, err := a.Sign(msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	// Wrong signer and, for b, wrong length for its type.
	if b.Verify(msg, sig) {
		t.Fatal("signature verified under an unrelated identity")
	}
}

func TestSign_WithoutPrivateKey(t *testing.T) {
	id := makeIdentity(t, domain.TypeCurve25519)

	var pub identity.Identity
	if err := pub.ParseString(id.StringWithPrivate(false)); err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if pub.HasPrivate() {
		t.Fatal("public-only identity claims a private key")
	}
	if _, err := pub.Sign([]byte("x")); err != identity.ErrMissingPrivateKey {
		t.Fatalf("want ErrMissingPrivateKey, got %v", err)
	}
}

func TestAgree_Symmetric(t *testing.T) {
	c1 := makeIdentity(t, domain.TypeCurve25519)
	c2 := freshIdentity(t, domain.TypeCurve25519)
	p1 := makeIdentity(t, domain.TypeP384)
	p2 := freshIdentity(t, domain.TypeP384)

	pairs := []struct {
		name string
		a, b *identity.Identity
	}{
		{"c25519-c25519", c1, c2},
		{"p384-p384", p1, p2},
		{"c25519-p384", c1, p1},
		{"p384-c25519", p2, c2},
	}
	for _, pair := range pairs {
		ab, err := pair.a.Agree(pair.b)
		if err != nil {
			t.Fatalf("%s: Agree(a,b): %v", pair.name, err)
		}
		ba, err := pair.b.Agree(pair.a)
		if err != nil {
			t.Fatalf("%s: Agree(b,a): %v", pair.name, err)
		}
		if ab != ba {
			t.Fatalf("%s: agreement is not symmetric", pair.name)
		}
		if ab == (domain.SecretKey{}) {
			t.Fatalf("%s: agreement produced an all-zero key", pair.name)
		}
	}

	// Dual-curve agreement must differ from the Curve25519-only exchange
	// between the same parties.
	pp, err := p1.Agree(p2)
	if err != nil {
		t.Fatalf("Agree(p1,p2): %v", err)
	}
	mixedStyle, err := c1.Agree(p2)
	if err != nil {
		t.Fatalf("Agree(c1,p2): %v", err)
	}
	if pp == mixedStyle {
		t.Fatal("unrelated agreements collided")
	}
}

func TestAgree_Failures(t *testing.T) {
	id := makeIdentity(t, domain.TypeCurve25519)

	var pub identity.Identity
	if err := pub.ParseString(id.StringWithPrivate(false)); err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if _, err := pub.Agree(id); err != identity.ErrMissingPrivateKey {
		t.Fatalf("want ErrMissingPrivateKey, got %v", err)
	}

	var nilID identity.Identity
	if _, err := id.Agree(&nilID); err != identity.ErrNilIdentity {
		t.Fatalf("want ErrNilIdentity, got %v", err)
	}
	if _, err := nilID.Agree(id); err != identity.ErrNilIdentity {
		t.Fatalf("want ErrNilIdentity, got %v", err)
	}
	if _, err := id.Agree(nil); err != identity.ErrNilIdentity {
		t.Fatalf("want ErrNilIdentity, got %v", err)
	}
}

func TestNilIdentity(t *testing.T) {
	var a, b identity.Identity

	if !a.IsNil() || a.Address().IsSet() {
		t.Fatal("zero value is not the nil identity")
	}
	if !a.Equal(&b) {
		t.Fatal("two nil identities are not equal")
	}
	if a.Equal(makeIdentity(t, domain.TypeCurve25519)) {
		t.Fatal("nil identity equals a real one")
	}
	if a.LocallyValidate() {
		t.Fatal("nil identity validated")
	}
	if _, err := a.Sign([]byte("x")); err == nil {
		t.Fatal("nil identity signed")
	}
	if a.Verify([]byte("x"), make([]byte, 64)) {
		t.Fatal("nil identity verified a signature")
	}
	if a.String() != "" {
		t.Fatalf("nil identity renders as %q", a.String())
	}
	if _, err := a.Marshal(false); err == nil {
		t.Fatal("nil identity marshaled")
	}
	if h := a.HashWithPrivate(); h != ([domain.FingerprintHashSize]byte{}) {
		t.Fatal("nil identity has a non-zero private hash")
	}
}

func TestDistinctIdentities_DistinctFingerprints(t *testing.T) {
	a := makeIdentity(t, domain.TypeCurve25519)
	b := freshIdentity(t, domain.TypeCurve25519)

	if a.Equal(b) {
		t.Fatal("independently generated identities are equal")
	}
	if a.Address() == b.Address() {
		t.Fatal("independently generated identities share an address")
	}
	if a.HashCode() == b.HashCode() {
		t.Fatal("independently generated identities share a hash code")
	}
	if !a.Less(b) && !b.Less(a) {
		t.Fatal("distinct identities are not ordered")
	}
}

func TestHashWithPrivate(t *testing.T) {
	id := makeIdentity(t, domain.TypeCurve25519)

	h := id.HashWithPrivate()
	if h == ([domain.FingerprintHashSize]byte{}) {
		t.Fatal("identity with private key hashed to zero")
	}

	var pub identity.Identity
	if err := pub.ParseString(id.StringWithPrivate(false)); err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if pub.HashWithPrivate() != ([domain.FingerprintHashSize]byte{}) {
		t.Fatal("public-only identity produced a non-zero private hash")
	}
}

func TestZero_WipesIdentity(t *testing.T) {
	id := freshIdentity(t, domain.TypeCurve25519)
	id.Zero()
	if !id.IsNil() || id.HasPrivate() {
		t.Fatal("Zero left identity state behind")
	}
	if _, err := id.Sign([]byte("x")); err == nil {
		t.Fatal("zeroed identity signed")
	}
}
