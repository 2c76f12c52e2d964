package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), ConfigFileName))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "gary.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "gary.log", cfg.Log.Path)
	assert.Equal(t, time.Hour, cfg.SchedulerInterval())
	assert.Empty(t, cfg.Seed.Path)
}

func TestLoader_Load_EmptyPath(t *testing.T) {
	cfg, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, "gary.db", cfg.Store.Path)
}

func TestLoader_Load_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `
[store]
path = "team.db"

[log]
level = "debug"

[scheduler]
interval = "15m"

[seed]
path = "seed.yaml"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "team.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gary.log", cfg.Log.Path) // untouched sections keep defaults
	assert.Equal(t, 15*time.Minute, cfg.SchedulerInterval())
	assert.Equal(t, "seed.yaml", cfg.Seed.Path)
}

func TestLoader_Load_DisableFileLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[log]\npath = \"\"\n"), 0o600))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Log.Path)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[store\npath ="), 0o600))

	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}

func TestLoader_Load_BadIntervalFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[scheduler]\ninterval = \"soon\"\n"), 0o600))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.SchedulerInterval())
}
