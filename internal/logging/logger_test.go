package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewLogger("test", &buf, DefaultConfig())
	require.NoError(t, err)

	logger.WithField("run", "42").Info("hello")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "[component:test]")
	assert.Contains(t, out, "[run:42]")
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, "hidden")
}

func TestNewLogger_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "debug"

	logger, err := NewLogger("test", &buf, cfg)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.Logger.GetLevel())

	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewLogger_BadLevel(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Level = "loud"

	_, err := NewLogger("test", &bytes.Buffer{}, cfg)
	assert.Error(t, err)
}

func TestNewLogger_File(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "rates.log")

	logger, err := NewLogger("test", &bytes.Buffer{}, cfg)
	require.NoError(t, err)

	logger.Info("to file")

	b, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"to file"`)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultLogger(), FromContext(context.Background()))

	logger, err := NewLogger("ctx", &bytes.Buffer{}, DefaultConfig())
	require.NoError(t, err)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}
