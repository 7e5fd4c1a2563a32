package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thrivemum.log")

	logger, err := New(Options{OutputPath: path})
	require.NoError(t, err)

	logger.Info("hidden at default level")
	logger.Warn("remote call failed", zap.Int("status", 503))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "remote call failed")
	assert.Contains(t, string(data), "thrivemum")
	assert.NotContains(t, string(data), "hidden at default level")
}

func TestNew_Verbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verbose.log")

	logger, err := New(Options{Verbose: true, OutputPath: path})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
