package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/hanzicards/internal/config"
)

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "hanzicards.log")
	log, f, err := New(config.LogConfig{Path: path, Level: "info", Format: "json"})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("catalog loaded")
	require.NoError(t, log.Sync())
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "catalog loaded", entry["msg"])
	require.Equal(t, "info", entry["level"])
}

func TestNewConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanzicards.log")
	log, f, err := New(config.LogConfig{Path: path, Level: "debug", Format: "console"})
	require.NoError(t, err)
	log.Debug("transition")
	require.NoError(t, log.Sync())
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "DEBUG")
	require.Contains(t, string(data), "transition")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	require.Error(t, err)
}
