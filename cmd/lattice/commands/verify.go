package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lattice/internal/identity"
)

// verify <identity> <file> <sig-hex>: check a signature.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <identity> <file> <sig-hex>",
		Short: "Verify a file signature",
		Args:  cobra.ExactArgs(3),
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
			sig, err := hex.DecodeString(args[2])
			if err != nil {
				return err
			}
			if !id.Verify(data, sig) {
				return fmt.Errorf("signature does not verify")
			}
			fmt.Println("ok")
			return nil
		},
	}
}
