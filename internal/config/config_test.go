package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub", DefaultDBName), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "sub", DefaultLogName), cfg.LogPath)
	assert.Equal(t, "q", cfg.Keys.Quit)
	assert.Equal(t, " ", cfg.Keys.Toggle)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "db_path")
	assert.Contains(t, string(data), "todo.db")
	assert.Contains(t, string(data), "[keys]")

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateFillsBlanks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)
	content := `db_path = "/var/lib/todo/tasks.db"
log_level = "debug"
max_value_bytes = 5000000

[keys]
add = "n"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/todo/tasks.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5000000, cfg.MaxValueBytes)
	assert.Equal(t, "n", cfg.Keys.Add)
	assert.Equal(t, "d", cfg.Keys.Delete)
	assert.Equal(t, filepath.Join(dir, DefaultLogName), cfg.LogPath)
}

func TestLoadOrCreateKeepsSQLiteURIs(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`db_path = "file:todo?mode=memory"`), 0o644))
	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "file:todo?mode=memory", cfg.DBPath)
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("db_path = = ="), 0o644))
	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}

func TestResolveConfigPathHonoursEnv(t *testing.T) {
	t.Setenv(envConfig, "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", ResolveConfigPath())
}
