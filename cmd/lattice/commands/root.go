package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lattice/internal/app"
	"lattice/internal/services/keystore"
	"lattice/internal/store"
)

var (
	home       string
	passphrase string
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "lattice",
		Short: "Self-certifying node identity tool",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".lattice")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			appCtx = app.New(keystore.New(store.NewFileStore(home)))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.lattice)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored identity")

	root.AddCommand(
		generateCmd(), validateCmd(), fingerprintCmd(), publicCmd(),
		signCmd(), verifyCmd(), initCmd(), showCmd(),
	)
	return root.Execute()
}
