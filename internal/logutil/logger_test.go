package logutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelsAndFormats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, LoggerConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = New(&buf, LoggerConfig{Level: "loud"})
	assert.Error(t, err)
	_, err = New(&buf, LoggerConfig{Format: "xml"})
	assert.Error(t, err)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, closer, err := NewFile(path, LoggerConfig{Level: "debug"})
	require.NoError(t, err)
	logger.Debug("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}
