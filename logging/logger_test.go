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

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(levelEnvVar, "debug")
	assert.Equal(t, zapcore.DebugLevel, levelFromEnv(zapcore.InfoLevel))

	t.Setenv(levelEnvVar, "loud")
	assert.Equal(t, zapcore.InfoLevel, levelFromEnv(zapcore.InfoLevel))

	t.Setenv(levelEnvVar, "")
	assert.Equal(t, zapcore.WarnLevel, levelFromEnv(zapcore.WarnLevel))
}

func TestInitLoggerWritesServiceLog(t *testing.T) {
	previous := Log
	t.Cleanup(func() {
		Log = previous
		zap.ReplaceGlobals(previous)
	})
	t.Setenv(levelEnvVar, "")

	dir := filepath.Join(t.TempDir(), "logs")
	InitLogger(dir)
	Info("Catalog warmed", zap.Int("categories", 3))
	Debug("Not written at info level")
	_ = Sync()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"service":"stylino-storefront"`)
	assert.Contains(t, string(data), "Catalog warmed")
	assert.NotContains(t, string(data), "Not written")
}
