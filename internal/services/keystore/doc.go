// Package keystore manages creation, encryption and loading of the local
// node identity.
//
// It enforces passphrase policy, runs identity generation (including the
// address-binding search), and persists the result via domain.IdentityStore.
package keystore
