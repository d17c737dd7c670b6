package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lattice/internal/identity"
)

// validate <identity>: check that the address matches the key material.
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <identity>",
		Short: "Check an identity's address against its key material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id identity.Identity
			if err := id.ParseString(args[0]); err != nil {
				return err
			}
			defer id.Zero()
			if !id.LocallyValidate() {
				return fmt.Errorf("invalid: address does not correspond to the public key")
			}
			fmt.Println("ok")
			return nil
		},
	}
}
