package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lattice/internal/identity"
)

// public <identity>: strip private key material.
func publicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "public <identity>",
		Short: "Print the public form of an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id identity.Identity
			if err := id.ParseString(args[0]); err != nil {
				return err
			}
			defer id.Zero()
			fmt.Println(id.String())
			return nil
		},
	}
}
