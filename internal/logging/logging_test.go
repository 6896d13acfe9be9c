package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileLoggerWritesJSONWithRunID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "calm.log")
	logger, closeFn := New(Options{File: path})
	logger.Info("check-in recorded", zap.String("zone", "red"))
	logger.Debug("hidden at info level")
	closeFn()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "check-in recorded", entry["msg"])
	assert.Equal(t, "red", entry["zone"])
	_, err = uuid.Parse(entry["run_id"].(string))
	assert.NoError(t, err)
}

func TestVerboseConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := New(Options{Verbose: true, Console: &buf})
	logger.Debug("loading user data")
	closeFn()
	assert.Contains(t, buf.String(), "loading user data")
	assert.Contains(t, buf.String(), "run_id")
}

func TestQuietConsoleWithoutVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := New(Options{Console: &buf})
	logger.Error("should go nowhere")
	closeFn()
	assert.Empty(t, buf.String())
}
