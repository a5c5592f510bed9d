package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/seabattle/internal/config"
)

func TestParseQuotas(t *testing.T) {
	got, err := parseQuotas([]string{"4=1", "1=4", "2=0"})
	require.NoError(t, err)
	assert.Equal(t, map[int]uint64{4: 1, 1: 4, 2: 0}, got)

	for _, bad := range []string{"4", "5=1", "0=1", "x=1", "2=-1", "2=x"} {
		_, err := parseQuotas([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestUseColor(t *testing.T) {
	on, err := useColor("always")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = useColor("never")
	require.NoError(t, err)
	assert.False(t, on)

	_, err = useColor("sometimes")
	assert.Error(t, err)
}

func TestProtocolLoggerKeepsStderrForReplies(t *testing.T) {
	var stderr bytes.Buffer

	plog, closeLog, err := protocolLogger(config.LogConfig{Level: "debug"}, &stderr)
	require.NoError(t, err)
	defer closeLog()

	plog.Info("player created")
	plog.Warn("rejected command")
	assert.Empty(t, stderr.String())
	assert.Equal(t, log.ErrorLevel, plog.GetLevel())
}

func TestProtocolLoggerWritesFile(t *testing.T) {
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "seabattle.log")

	plog, closeLog, err := protocolLogger(config.LogConfig{Level: "info", File: path}, &stderr)
	require.NoError(t, err)
	plog.Info("fleet placed", "ships", 4)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fleet placed")
	assert.Empty(t, stderr.String())
}

func TestProtocolLoggerBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "seabattle.log")

	_, _, err := protocolLogger(config.LogConfig{Level: "info", File: path}, &bytes.Buffer{})
	assert.Error(t, err)
}
