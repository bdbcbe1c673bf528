package block

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"rsakit/internal/rsa"
)

func newPair(t *testing.T, bits int) rsa.KeyPair {
	t.Helper()
	kp, err := rsa.GenerateKeyPair(bits, rsa.DefaultExponent)
	require.NoError(t, err)
	return kp
}

func roundTrip(t *testing.T, data []byte, enc, dec rsa.Key) []byte {
	t.Helper()
	var ct bytes.Buffer
	st, err := Encrypt(&ct, bytes.NewReader(data), enc)
	require.NoError(t, err)

	_, out, err := Sizes(enc)
	require.NoError(t, err)
	require.Equal(t, 0, ct.Len()%out, "ciphertext not block aligned")
	require.Equal(t, int64(len(data)), st.BytesIn)
	require.Equal(t, int64(ct.Len()), st.BytesOut)

	var pt bytes.Buffer
	_, err = Decrypt(&pt, &ct, dec)
	require.NoError(t, err)
	return pt.Bytes()
}

func TestSizes(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(1), 2047)
	n.Add(n, big.NewInt(1))
	k, err := rsa.NewKey(big.NewInt(3), n)
	require.NoError(t, err)

	in, out, err := Sizes(k)
	require.NoError(t, err)
	require.Equal(t, 255, in)
	require.Equal(t, 256, out)

	n.SetInt64(1<<20 + 1) // 21 bits
	k, err = rsa.NewKey(big.NewInt(3), n)
	require.NoError(t, err)
	in, out, err = Sizes(k)
	require.NoError(t, err)
	require.Equal(t, 1, in)
	require.Equal(t, 3, out)
}

func TestSizes_TooSmall(t *testing.T) {
	kp, err := rsa.GenerateFromPrimes(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	require.NoError(t, err)

	_, _, err = Sizes(kp.Public)
	require.ErrorIs(t, err, ErrModulusTooSmall)
	_, err = Encrypt(io.Discard, bytes.NewReader([]byte("x")), kp.Public)
	require.ErrorIs(t, err, ErrModulusTooSmall)
	_, err = Decrypt(io.Discard, bytes.NewReader([]byte("x")), kp.Public)
	require.ErrorIs(t, err, ErrModulusTooSmall)
}

func TestRoundTrip(t *testing.T) {
	kp := newPair(t, 64)
	in, _, err := Sizes(kp.Public)
	require.NoError(t, err)

	random := make([]byte, 10*in+3)
	_, err = rand.Read(random)
	require.NoError(t, err)

	cases := map[string][]byte{
		"empty":           {},
		"single byte":     {0x42},
		"zero byte":       {0x00},
		"all zero":        make([]byte, 3*in+1),
		"exact block":     bytes.Repeat([]byte{0xff}, in),
		"exact blocks":    bytes.Repeat([]byte{0xab}, 4*in),
		"leading zeros":   append([]byte{0, 0, 0}, []byte("payload")...),
		"trailing zeros":  append([]byte("payload"), 0, 0, 0),
		"ends in one":     {0x01, 0x01},
		"multiple blocks": random,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			got := roundTrip(t, data, kp.Private, kp.Public)
			require.True(t, bytes.Equal(data, got), "private→public mismatch")

			got = roundTrip(t, data, kp.Public, kp.Private)
			require.True(t, bytes.Equal(data, got), "public→private mismatch")
		})
	}
}

func TestEncrypt_EmptyInputWritesNothing(t *testing.T) {
	kp := newPair(t, 64)
	var ct bytes.Buffer
	st, err := Encrypt(&ct, bytes.NewReader(nil), kp.Public)
	require.NoError(t, err)
	require.Zero(t, ct.Len())
	require.Zero(t, st.Blocks)
}

func TestEncrypt_BlockCount(t *testing.T) {
	kp := newPair(t, 64)
	in, out, err := Sizes(kp.Public)
	require.NoError(t, err)

	var ct bytes.Buffer
	st, err := Encrypt(&ct, bytes.NewReader(make([]byte, 2*in+1)), kp.Public)
	require.NoError(t, err)
	require.Equal(t, 3, st.Blocks)
	require.Equal(t, 3*out, ct.Len())
}

// oneByteReader hands out data a byte at a time to exercise short reads.
type oneByteReader struct{ r io.Reader }

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return o.r.Read(p[:1])
}

func TestRoundTrip_ShortReads(t *testing.T) {
	kp := newPair(t, 64)
	data := []byte("short reads must not change the block layout at all")

	var direct, trickled bytes.Buffer
	_, err := Encrypt(&direct, bytes.NewReader(data), kp.Private)
	require.NoError(t, err)
	_, err = Encrypt(&trickled, oneByteReader{bytes.NewReader(data)}, kp.Private)
	require.NoError(t, err)
	require.Equal(t, direct.Bytes(), trickled.Bytes())

	var pt bytes.Buffer
	_, err = Decrypt(&pt, oneByteReader{&trickled}, kp.Public)
	require.NoError(t, err)
	require.Equal(t, data, pt.Bytes())
}

func TestDecrypt_Truncated(t *testing.T) {
	kp := newPair(t, 64)
	var ct bytes.Buffer
	_, err := Encrypt(&ct, bytes.NewReader([]byte("hello world, hello world")), kp.Public)
	require.NoError(t, err)

	truncated := ct.Bytes()[:ct.Len()-1]
	_, err = Decrypt(io.Discard, bytes.NewReader(truncated), kp.Private)
	require.ErrorIs(t, err, ErrTruncatedBlock)
}

func TestDecrypt_OutOfRange(t *testing.T) {
	kp := newPair(t, 64)
	_, out, err := Sizes(kp.Public)
	require.NoError(t, err)

	_, err = Decrypt(io.Discard, bytes.NewReader(bytes.Repeat([]byte{0xff}, out)), kp.Private)
	require.ErrorIs(t, err, ErrBlockOutOfRange)
}

func TestDecrypt_MissingSentinel(t *testing.T) {
	kp := newPair(t, 64)
	_, out, err := Sizes(kp.Public)
	require.NoError(t, err)

	// 0^d = 0 decodes to no bytes at all
	_, err = Decrypt(io.Discard, bytes.NewReader(make([]byte, out)), kp.Private)
	require.ErrorIs(t, err, ErrCorruptBlock)
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestIOErrorsPropagate(t *testing.T) {
	kp := newPair(t, 64)
	boom := errors.New("boom")

	_, err := Encrypt(failingWriter{boom}, bytes.NewReader([]byte("abc")), kp.Public)
	require.ErrorIs(t, err, boom)

	_, err = Encrypt(io.Discard, failingReader{boom}, kp.Public)
	require.ErrorIs(t, err, boom)

	var ct bytes.Buffer
	_, err = Encrypt(&ct, bytes.NewReader([]byte("abc")), kp.Public)
	require.NoError(t, err)
	_, err = Decrypt(failingWriter{boom}, &ct, kp.Private)
	require.ErrorIs(t, err, boom)

	_, err = Decrypt(io.Discard, failingReader{boom}, kp.Private)
	require.ErrorIs(t, err, boom)
}

func TestRoundTrip_DefaultKeySize(t *testing.T) {
	if testing.Short() {
		t.Skip("1024-bit prime search is slow")
	}
	kp := newPair(t, rsa.DefaultBits)
	data := make([]byte, 1000)
	_, err := rand.Read(data)
	require.NoError(t, err)

	require.Equal(t, data, roundTrip(t, data, kp.Private, kp.Public))
}
