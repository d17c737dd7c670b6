// Package commands defines the lattice CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate      Create an identity and print it with its private key
//   - validate      Check an identity's address binding
//   - fingerprint   Print an identity's fingerprint
//   - public        Strip private key material from an identity
//   - sign          Sign a file with an identity
//   - verify        Verify a file signature
//   - init          Create the node identity and store it encrypted
//   - show          Print the stored identity
//
// # Implementation
//
// The root command builds the file store and keystore service under the
// chosen home directory before any subcommand runs, so handlers share one
// app context. Commands that read the stored identity need the passphrase
// flag; the rest operate on identity strings passed as arguments.
package commands
