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

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("chatty"))
}

func TestInstallWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "expodir.log")

	restore, err := Install(path, "info")
	require.NoError(t, err)

	zap.S().Infof("loaded %d industries", 12)
	zap.S().Debugf("hidden at info level")
	restore()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded 12 industries")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, cleanup, err := New("", "debug")
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, logger)
}
