// Package binding derives and validates the short address an identity binds
// to its public key material, and computes the public-key fingerprints.
//
// Curve25519 identities earn their address by searching a single-byte nonce
// space under a memory-hard digest until it clears a fixed difficulty
// threshold. The search costs on the order of a second; re-checking a stored
// binding costs one digest. P-384 identities instead bind with one SHA-384
// pass over both key pairs, since holding two independent keys replaces the
// work requirement.
package binding
