package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {

	t.Run("level", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, zerolog.DebugLevel, newLogger(&buf, "debug").GetLevel())
		assert.Equal(t, zerolog.ErrorLevel, newLogger(&buf, "error").GetLevel())
	})

	t.Run("unknown level falls back to warn", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, zerolog.WarnLevel, newLogger(&buf, "").GetLevel())
		assert.Equal(t, zerolog.WarnLevel, newLogger(&buf, "loud").GetLevel())
	})

	t.Run("pipe is not a terminal", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()
		defer w.Close()

		assert.False(t, isTerminal(w))
		assert.False(t, isTerminal(r))
	})

	t.Run("no color on a pipe", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()

		logger := newLogger(w, "info")
		logger.Info().Str("k", "v").Msg("hello")
		require.NoError(t, w.Close())

		out, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Contains(t, string(out), "k=v")
		assert.NotContains(t, string(out), "\x1b[")
	})

	t.Run("no color off a terminal", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "info")
		logger.Info().Str("k", "v").Msg("hello")

		assert.Contains(t, buf.String(), "hello")
		assert.Contains(t, buf.String(), "k=v")
		assert.NotContains(t, buf.String(), "\x1b[")
	})

}
