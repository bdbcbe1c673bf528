package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewText_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewText(&buf, slog.LevelInfo)
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "shown", "bits", 1024)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "bits=1024")
}

func TestWithAndRedacted(t *testing.T) {
	var buf bytes.Buffer
	log := NewText(&buf, slog.LevelDebug).With("op", "generate")

	log.Info(context.Background(), "key ready", Redacted("private_exponent"))

	out := buf.String()
	require.Contains(t, out, "op=generate")
	require.Contains(t, out, "private_exponent="+Placeholder())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "loud"))
}

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() {
		Discard().Error(context.Background(), "dropped")
	})
}
