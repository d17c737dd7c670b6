package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lattice/internal/identity"
)

// sign <identity> <file>: sign a file with an identity that carries its
// private key.
func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <identity> <file>",
		Short: "Sign a file and print the signature in hex",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id identity.Identity
			if err := id.ParseString(args[0]); err != nil {
				return err
			}
			defer id.Zero()

			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			sig, err := id.Sign(data)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(sig))
			return nil
		},
	}
}
