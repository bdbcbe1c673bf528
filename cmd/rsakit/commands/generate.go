package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsakit/internal/domain"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a key pair into key.public and key.private",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config
			res, err := wire.KeyGen.GenerateKeyPair(cmd.Context(), domain.GenerateRequest{
				Dir:         cfg.OutDir,
				Passphrase:  passphrase,
				Bits:        cfg.Bits,
				Exponent:    cfg.Exponent,
				Rounds:      cfg.Rounds,
				MaxAttempts: cfg.MaxAttempts,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key pair created (%d-bit modulus, %d attempts).\n", res.ModulusBits, res.Attempts)
			fmt.Fprintf(out, "Public:  %s\n", res.Paths.Public)
			fmt.Fprintf(out, "Private: %s\n", res.Paths.Private)
			return nil
		},
	}
	cmd.Flags().String("dir", ".", "directory to write the key files into")
	cmd.Flags().Int("bits", 0, "bits per prime (default 1024)")
	cmd.Flags().Int64("exponent", 0, "public exponent (default 65537)")
	cmd.Flags().Int("rounds", 0, "Miller-Rabin rounds (default 4)")
	cmd.Flags().Int("max-attempts", 0, "cap on candidates per prime and on prime pairs per key, 0 for no limit")
	return cmd
}
