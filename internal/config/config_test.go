package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financas.yaml")

	cfg := Default()
	cfg.DataDir = "/tmp/finances"
	cfg.DefaultFeed = "bank"
	cfg.Git.AutoCommit = true
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadOrDefault_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "card", cfg.DefaultFeed)
	assert.Equal(t, "Outros", cfg.DefaultCategory)
	assert.Equal(t, DefaultExcludeKeywords, cfg.ExcludeKeywords)
	assert.False(t, cfg.Git.AutoCommit)
}

func TestLoadOrDefault_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financas.yaml")
	cfg := Default()
	cfg.DefaultCategory = "Diversos"
	require.NoError(t, Save(path, cfg))

	loaded, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "Diversos", loaded.DefaultCategory)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FINANCAS_DATA_DIR", "/srv/financas")
	t.Setenv("FINANCAS_DEFAULT_FEED", "bank")
	t.Setenv("FINANCAS_DEFAULT_CATEGORY", "Diversos")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/srv/financas", cfg.DataDir)
	assert.Equal(t, "bank", cfg.DefaultFeed)
	assert.Equal(t, "Diversos", cfg.DefaultCategory)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financas.yaml")
	require.NoError(t, Save(path, Default()))

	t.Setenv("FINANCAS_DATA_DIR", "/srv/financas")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/financas", cfg.DataDir)
}
