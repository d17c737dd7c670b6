package domain_test

import (
	"testing"

	"lattice/internal/domain"
)

func TestAddress_RoundTrip(t *testing.T) {
	addr := domain.Address(0x1a2b3c4d5e)

	var b [domain.AddressLength]byte
	addr.PutBytes(b[:])
	if got := domain.AddressFromBytes(b[:]); got != addr {
		t.Fatalf("byte round trip: got %s, want %s", got, addr)
	}

	parsed, err := domain.ParseAddress(addr.String())
	if err != nil {
		t.Fatalf("ParseAddress(%q): %v", addr.String(), err)
	}
	if parsed != addr {
		t.Fatalf("text round trip: got %s, want %s", parsed, addr)
	}
}

func TestAddress_ParseRejects(t *testing.T) {
	for _, s := range []string{"", "abcd", "1a2b3c4d5e6f", "zzzzzzzzzz", "1a2b3c4d5"} {
		if _, err := domain.ParseAddress(s); err == nil {
			t.Fatalf("ParseAddress accepted %q", s)
		}
	}
}

func TestAddress_Reserved(t *testing.T) {
	if !domain.Address(0).IsReserved() {
		t.Fatal("zero address is not reserved")
	}
	if !domain.Address(0xff00000001).IsReserved() {
		t.Fatal("0xff prefix is not reserved")
	}
	if domain.Address(0x0100000000).IsReserved() {
		t.Fatal("ordinary address is reserved")
	}
}

func TestAddress_FromShortBytes(t *testing.T) {
	if domain.AddressFromBytes([]byte{1, 2}) != 0 {
		t.Fatal("short input did not yield the nil address")
	}
}

func TestFingerprint_Ordering(t *testing.T) {
	a := domain.Fingerprint{Address: 1}
	b := domain.Fingerprint{Address: 2}
	a.Hash[0] = 1
	b.Hash[0] = 2

	if !a.Less(b) || b.Less(a) {
		t.Fatal("digest ordering is wrong")
	}

	// Same digest: address breaks the tie.
	b.Hash = a.Hash
	if !a.Less(b) || b.Less(a) {
		t.Fatal("address tiebreak is wrong")
	}

	if !a.Equal(a) || a.Equal(b) {
		t.Fatal("equality over digest+address is wrong")
	}
	if a.HashCode() != b.HashCode() {
		t.Fatal("hash code should depend on digest bytes only")
	}
}
