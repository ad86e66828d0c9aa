package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "locationd.log")

	l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "locationd"})
	require.NoError(t, err)

	l.Info("hello", String("device_id", "sim-1"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"service":"locationd"`)
	assert.Contains(t, string(data), `"device_id":"sim-1"`)
	assert.Equal(t, path, l.GetFilePath())
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger(ZapConfig{Level: "loud"})
	require.NoError(t, err)

	assert.True(t, l.Core().Enabled(0))
	assert.False(t, l.Core().Enabled(-1))
}

func TestGlobalLogger(t *testing.T) {
	nop := NewNopLogger()
	SetGlobalLogger(nop)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	assert.Same(t, nop, GetGlobalLogger())
	Info("ignored", Int("n", 1))
}
