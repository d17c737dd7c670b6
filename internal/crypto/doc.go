// Package crypto wraps the primitives the identity stack is built from.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie–Hellman (GenerateX25519, DH)
//   - Ed25519 seed-based signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - NIST P-384 signing, verification and Diffie–Hellman over compressed
//     points (GenerateP384, SignP384, VerifyP384, DHP384)
//   - SHA-384 over concatenated chunks (SHA384)
//   - The memory-hard digest used for address binding (MemoryHardDigest)
//
// All functions return fixed-size array types defined in internal/domain to
// avoid accidental reallocations. Callers should treat returned secrets as
// sensitive and wipe them when practical.
package crypto
