package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	var keyPath string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Describe a key file without printing private material",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := wire.Cipher.Inspect(cmd.Context(), keyPath, passphrase)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key:       %s\n", info.Path)
			fmt.Fprintf(out, "Sealed:    %t\n", info.Sealed)
			fmt.Fprintf(out, "Modulus:   %d bits\n", info.ModulusBits)
			if info.Exponent != "" {
				fmt.Fprintf(out, "Exponent:  %s\n", info.Exponent)
			} else {
				fmt.Fprintf(out, "Exponent:  %d bits (hidden)\n", info.ExponentBits)
			}
			if info.PlainBlock > 0 {
				fmt.Fprintf(out, "Blocks:    %d bytes in, %d bytes out\n", info.PlainBlock, info.CipherBlock)
			} else {
				fmt.Fprintln(out, "Blocks:    modulus too small for the block transform")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keyPath, "key", "", "key file to describe")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
