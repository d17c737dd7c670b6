package crypto

import "golang.org/x/crypto/argon2"

// MemoryHardDigestSize is the output width of the address-binding digest.
const MemoryHardDigestSize = 64

// Argon2id parameters for the binding digest. These are protocol constants:
// changing any of them changes every derived address.
const (
	memoryHardTime    = 1
	memoryHardMemory  = 8 * 1024 // KiB
	memoryHardThreads = 1
)

// memoryHardSalt domain-separates the binding digest from other Argon2 uses.
var memoryHardSalt = []byte("lattice/v0 address binding")

// MemoryHardDigest runs the Argon2id digest used for address binding. One
// evaluation walks several megabytes of memory and takes tens of
// milliseconds, which prices the search during generation without making
// verification free.
func MemoryHardDigest(material []byte) (out [MemoryHardDigestSize]byte) {
	sum := argon2.IDKey(material, memoryHardSalt,
		memoryHardTime, memoryHardMemory, memoryHardThreads, MemoryHardDigestSize)
	copy(out[:], sum)
	return
}
