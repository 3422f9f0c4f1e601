package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, l)

	_, err = parseLevel("loud")
	require.Error(t, err)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
}

func TestNew_LevelIsApplied(t *testing.T) {
	logger, err := New(Config{Level: "warn", OutputPaths: []string{filepath.Join(t.TempDir(), "log.json")}})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_Development(t *testing.T) {
	cfg := DevelopmentConfig()
	cfg.OutputPaths = []string{filepath.Join(t.TempDir(), "dev.log")}

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	logger.Info("hello", zap.Int("n", 1))
	require.NoError(t, logger.Sync())
}

func TestDefaults(t *testing.T) {
	prod, dev := DefaultConfig(), DevelopmentConfig()
	assert.Equal(t, "info", prod.Level)
	assert.False(t, prod.Development)
	assert.Equal(t, "debug", dev.Level)
	assert.True(t, dev.Development)
	assert.Equal(t, []string{"stderr"}, prod.OutputPaths)

	assert.Equal(t, "json", encodingFormat(false))
	assert.Equal(t, "console", encodingFormat(true))
}
