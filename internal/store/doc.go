// Package store persists the local node identity on disk.
//
// The identity's binary form is sealed with ChaCha20-Poly1305 under a key
// derived from the owner's passphrase with scrypt; the KDF parameters ride
// along in a small JSON envelope so they can be tuned without breaking old
// files.
package store
