package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lattice/internal/domain"
)

func initCmd() *cobra.Command {
	var typ int
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate the node identity and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := appCtx.Keys.Generate(domain.Type(typ), passphrase)
			if err != nil {
				return err
			}
			defer id.Zero()
			fmt.Printf("Identity created.\nAddress: %s\nFingerprint: %s\n",
				id.Address(), id.Fingerprint())
			return nil
		},
	}
	cmd.Flags().IntVarP(&typ, "type", "t", 0, "identity type (0 = c25519, 1 = p384)")
	return cmd
}
