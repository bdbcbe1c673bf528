package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(bytes.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateEncryptDecrypt(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RSAKIT_LOG_LEVEL", "error")

	out, err := run(t, nil, "generate", "--dir", dir, "--bits", "48")
	require.NoError(t, err)
	require.Contains(t, out, "Key pair created")

	pub := filepath.Join(dir, "key.public")
	priv := filepath.Join(dir, "key.private")
	plain := []byte("the quick brown fox\x00\x00")

	ctFile := filepath.Join(dir, "msg.enc")
	_, err = run(t, plain, "encrypt", "--key", pub, "--out", ctFile)
	require.NoError(t, err)

	pt, err := run(t, nil, "decrypt", "--key", priv, "--in", ctFile)
	require.NoError(t, err)
	require.Equal(t, string(plain), pt)
}

func TestGenerate_SealedInspect(t *testing.T) {
	dir := t.TempDir()
	pass := "Corr3ct-Horse!"

	_, err := run(t, nil, "-p", pass, "generate", "--dir", dir, "--bits", "48", "--exponent", "3")
	require.NoError(t, err)

	priv := filepath.Join(dir, "key.private")
	_, err = run(t, nil, "inspect", "--key", priv)
	require.Error(t, err)

	out, err := run(t, nil, "-p", pass, "inspect", "--key", priv)
	require.NoError(t, err)
	require.Contains(t, out, "Sealed:    true")
	require.Contains(t, out, "(hidden)")

	out, err = run(t, nil, "inspect", "--key", filepath.Join(dir, "key.public"))
	require.NoError(t, err)
	require.Contains(t, out, "Exponent:  3\n")
}

func TestEncrypt_RequiresKey(t *testing.T) {
	_, err := run(t, []byte("x"), "encrypt")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "rsakit.yaml")
	keys := filepath.Join(dir, "keys")
	require.NoError(t, os.WriteFile(cfg, []byte("bits: 40\nout_dir: "+keys+"\nlog_level: warn\n"), 0o600))

	_, err := run(t, nil, "--config", cfg, "generate")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(keys, "key.public"))
	require.FileExists(t, filepath.Join(keys, "key.private"))
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, nil, "--log-level", "loud", "inspect", "--key", "x")
	require.ErrorContains(t, err, "unknown log level")
}

func TestEncrypt_FailureKeepsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "important.bin")
	require.NoError(t, os.WriteFile(target, []byte("precious data"), 0o600))

	_, err := run(t, []byte("new input"), "encrypt", "--key", filepath.Join(dir, "missing.key"), "--out", target)
	require.Error(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "precious data", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}

func TestDecrypt_CorruptInputKeepsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, nil, "generate", "--dir", dir, "--bits", "48")
	require.NoError(t, err)

	target := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(target, []byte("earlier plaintext"), 0o600))

	// a ciphertext shorter than one block
	_, err = run(t, []byte{1, 2, 3}, "decrypt", "--key", filepath.Join(dir, "key.private"), "--out", target)
	require.Error(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "earlier plaintext", string(got))
}

func TestEncryptDecrypt_InPlace(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, nil, "generate", "--dir", dir, "--bits", "48")
	require.NoError(t, err)

	file := filepath.Join(dir, "msg")
	plain := []byte("rewrite me in place, twice")
	require.NoError(t, os.WriteFile(file, plain, 0o600))

	_, err = run(t, nil, "encrypt", "--key", filepath.Join(dir, "key.public"), "--in", file, "--out", file)
	require.NoError(t, err)
	ct, err := os.ReadFile(file)
	require.NoError(t, err)
	require.NotEqual(t, plain, ct)

	_, err = run(t, nil, "decrypt", "--key", filepath.Join(dir, "key.private"), "--in", file, "--out", file)
	require.NoError(t, err)
	got, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, plain, got)
}

func TestGenerate_MaxAttemptsHelp(t *testing.T) {
	f := generateCmd().Flags().Lookup("max-attempts")
	require.NotNil(t, f)
	require.Contains(t, f.Usage, "candidates per prime")
	require.Contains(t, f.Usage, "prime pairs per key")
}
