package main

import (
	"os"

	"lattice/cmd/lattice/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
