// Package identity implements the self-certifying node identity: key
// material, the address bound to it, fingerprints, signatures, key agreement
// and the text and binary encodings.
//
// An Identity is a plain value; the zero value is the nil identity. Values
// are immutable except through Generate, ParseString, Unmarshal and Zero, so
// a fully constructed identity may be read (Sign, Verify, Agree, String,
// Marshal, comparisons) from any number of goroutines without locking.
// Mutation concurrent with anything else needs external synchronization.
//
// Generate for TypeCurve25519 is CPU-bound and blocks until the address
// search completes; run it on a worker, not a latency-sensitive path. No
// operation here touches the network or disk.
//
// Zero wipes the private key bytes before clearing the rest of the value.
// Every path that overwrites an identity, including re-generation and
// decoding over an existing value, wipes the old private key first.
package identity
