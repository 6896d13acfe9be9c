package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RACSolutions/calm-compass-autism-support/internal/storage"
)

func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, string(storage.BackendSQLite), cfg.Backend)
	assert.Equal(t, filepath.Join(home, ".calmcompass.db"), cfg.DB)
	assert.Equal(t, filepath.Join(home, defaultLogName), cfg.LogFile)
	assert.False(t, cfg.Verbose)
}

func TestLoadBadgerDefaultPath(t *testing.T) {
	isolateHome(t)
	t.Setenv("CALM_BACKEND", "Badger")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, string(storage.BackendBadger), cfg.Backend)
	assert.Equal(t, filepath.Join(home, ".calmcompass.badger"), cfg.DB)
	assert.Equal(t, storage.Options{Backend: storage.BackendBadger, Path: cfg.DB}, cfg.StorageOptions())
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "calm.yaml")
	require.NoError(t, os.WriteFile(file, []byte("db: "+filepath.Join(dir, "a.db")+"\nverbose: true\n"), 0o600))

	cfg, err := Load(New(), file)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.db"), cfg.DB)
	assert.Equal(t, filepath.Join(dir, defaultLogName), cfg.LogFile)
	assert.True(t, cfg.Verbose)

	t.Setenv("CALM_DB", filepath.Join(dir, "b.db"))
	t.Setenv("CALM_LOG_FILE", filepath.Join(dir, "x.log"))
	cfg, err = Load(New(), file)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.db"), cfg.DB)
	assert.Equal(t, filepath.Join(dir, "x.log"), cfg.LogFile)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	isolateHome(t)
	t.Setenv("CALM_BACKEND", "postgres")
	_, err = Load(New(), "")
	assert.Error(t, err)
}

func TestMemoryBackendHasNoPath(t *testing.T) {
	isolateHome(t)
	t.Setenv("CALM_BACKEND", "memory")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Empty(t, cfg.DB)
	assert.NotEmpty(t, cfg.LogFile)
}
