package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financas-dev/financas/internal/config"
	"github.com/financas-dev/financas/internal/gitops"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, false))

	for _, d := range []string{"data", "inbox", filepath.Join("data", "logs")} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, d)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, "financas.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
	assert.False(t, cfg.Git.AutoCommit)

	// The rule set is seeded empty.
	data, err := os.ReadFile(filepath.Join(dir, "data", "categories.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	assert.False(t, gitops.IsRepo(filepath.Join(dir, "data")))
}

func TestRunInit_WithGit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, true))

	dataDir := filepath.Join(dir, "data")
	assert.True(t, gitops.IsRepo(dataDir))

	cfg, err := config.Load(filepath.Join(dir, "financas.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Git.AutoCommit)
}
