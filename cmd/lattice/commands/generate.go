package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lattice/internal/domain"
	"lattice/internal/identity"
)

func generateCmd() *cobra.Command {
	var typ int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new identity and print it, private key included",
		RunE: func(cmd *cobra.Command, args []string) error {
			var id identity.Identity
			if err := id.Generate(domain.Type(typ)); err != nil {
				return err
			}
			defer id.Zero()
			fmt.Println(id.StringWithPrivate(true))
			return nil
		},
	}
	cmd.Flags().IntVarP(&typ, "type", "t", 0, "identity type (0 = c25519, 1 = p384)")
	return cmd
}
