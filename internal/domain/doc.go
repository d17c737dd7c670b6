// Package domain defines the value types shared across the identity stack:
// addresses, fingerprints, identity types, fixed-size key material, and the
// store contract. It contains plain types and interfaces only.
package domain
