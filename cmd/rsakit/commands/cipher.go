package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rsakit/internal/block"
)

type streamFunc func(ctx context.Context, keyPath, passphrase string, dst io.Writer, src io.Reader) (block.Stats, error)

func encryptCmd() *cobra.Command {
	return streamCmd("encrypt", "Encrypt a file or stdin block by block", func() streamFunc {
		return wire.Cipher.Encrypt
	})
}

func decryptCmd() *cobra.Command {
	return streamCmd("decrypt", "Decrypt the output of encrypt with the other key", func() streamFunc {
		return wire.Cipher.Decrypt
	})
}

// streamCmd resolves fn lazily since the wire is only built in PersistentPreRunE.
func streamCmd(use, short string, fn func() streamFunc) *cobra.Command {
	var keyPath, inPath, outPath string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := cmd.InOrStdin()
			if inPath != "-" {
				f, err := os.Open(inPath)
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}

			dst := cmd.OutOrStdout()
			var out *pendingFile
			if outPath != "-" {
				var err error
				if out, err = createPending(outPath); err != nil {
					return err
				}
				defer out.Abort()
				dst = out
			}

			bw := bufio.NewWriter(dst)
			if _, err := fn()(cmd.Context(), keyPath, passphrase, bw, bufio.NewReader(src)); err != nil {
				return err
			}
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("%s: flush output: %w", use, err)
			}
			if out != nil {
				return out.Commit()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keyPath, "key", "", "key file (key.public or key.private)")
	cmd.Flags().StringVar(&inPath, "in", "-", "input file, - for stdin")
	cmd.Flags().StringVar(&outPath, "out", "-", "output file, - for stdout; replaced only on success")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

// pendingFile is written next to its target and renamed over it on Commit,
// so a failed run leaves an existing target untouched.
type pendingFile struct {
	*os.File
	target string
	done   bool
}

func createPending(target string) (*pendingFile, error) {
	f, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &pendingFile{File: f, target: target}, nil
}

// Commit syncs the temp file and atomically replaces the target with it.
func (p *pendingFile) Commit() error {
	if err := p.Chmod(0o644); err != nil {
		return err
	}
	if err := p.Sync(); err != nil {
		return err
	}
	if err := p.Close(); err != nil {
		return err
	}
	if err := os.Rename(p.Name(), p.target); err != nil {
		return err
	}
	p.done = true
	return nil
}

// Abort discards the temp file unless Commit succeeded.
func (p *pendingFile) Abort() {
	if p.done {
		return
	}
	_ = p.Close()
	_ = os.Remove(p.Name())
}
