// Package app wires application dependencies for the CLI.
//
// It builds the concrete store and keystore service from the chosen home
// directory, exposing them via the App struct for commands to use.
package app
