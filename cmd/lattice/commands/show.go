package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// show: print the stored identity's public form.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored identity (public form) and its fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := appCtx.Keys.Load(passphrase)
			if err != nil {
				return err
			}
			defer id.Zero()
			fmt.Printf("%s\nFingerprint: %s\n", id.String(), id.Fingerprint())
			return nil
		},
	}
}
