package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// AddressLength is the wire width of an Address in bytes (40 bits).
const AddressLength = 5

// ErrBadAddress is returned when text or bytes do not hold a 40-bit address.
var ErrBadAddress = errors.New("malformed address")

// Address is a short 40-bit node identifier bound to public key material.
// The zero value is the nil address.
type Address uint64

// IsSet reports whether the address holds a value.
func (a Address) IsSet() bool { return a != 0 }

// IsReserved reports whether a falls in a range the protocol keeps for
// itself: the all-zero address and the 0xff broadcast prefix.
func (a Address) IsReserved() bool { return a == 0 || (a>>32) == 0xff }

// String returns the canonical ten-digit lowercase hex form.
func (a Address) String() string { return fmt.Sprintf("%.10x", uint64(a)) }

// PutBytes writes the big-endian wire form into the first AddressLength
// bytes of b.
func (a Address) PutBytes(b []byte) {
	_ = b[AddressLength-1]
	b[0] = byte(a >> 32)
	b[1] = byte(a >> 24)
	b[2] = byte(a >> 16)
	b[3] = byte(a >> 8)
	b[4] = byte(a)
}

// AddressFromBytes reads the big-endian wire form from the first
// AddressLength bytes of b. Short input yields the nil address.
func AddressFromBytes(b []byte) Address {
	if len(b) < AddressLength {
		return 0
	}
	return Address(b[0])<<32 | Address(b[1])<<24 | Address(b[2])<<16 |
		Address(b[3])<<8 | Address(b[4])
}

// ParseAddress parses the ten-digit hex form.
func ParseAddress(s string) (Address, error) {
	if len(s) != 2*AddressLength {
		return 0, ErrBadAddress
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil || v>>40 != 0 {
		return 0, ErrBadAddress
	}
	return Address(v), nil
}
