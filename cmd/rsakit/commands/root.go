package commands

import (
	"github.com/spf13/cobra"

	"rsakit/internal/app"
	"rsakit/internal/logging"
)

var (
	configPath string
	passphrase string
	wire       *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "rsakit",
		Short:        "Textbook RSA key generation and block encryption",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			wire = app.NewWire(cfg, logging.NewText(cmd.ErrOrStderr(), level))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error (default info)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase sealing the private key")

	root.AddCommand(generateCmd(), encryptCmd(), decryptCmd(), inspectCmd())
	return root
}
