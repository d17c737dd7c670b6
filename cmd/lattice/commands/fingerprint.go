package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lattice/internal/identity"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <identity>",
		Short: "Print an identity's fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id identity.Identity
			if err := id.ParseString(args[0]); err != nil {
				return err
			}
			defer id.Zero()
			fmt.Println(id.Fingerprint())
			return nil
		},
	}
}
