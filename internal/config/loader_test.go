package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestHome points HOME at a temp dir so the default paths are isolated.
func setupTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o700))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	home := setupTestHome(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "masft", "educator.db"), cfg.Database.Path)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, DefaultMinScore, cfg.Resolver.MinScore)
	assert.Equal(t, DefaultHistoryLimit, cfg.History.Limit)
	assert.Equal(t, RenderAuto, cfg.Output.Render)
	assert.Empty(t, cfg.Metrics.File)
}

func TestLoad_DefaultConfigFile(t *testing.T) {
	home := setupTestHome(t)
	writeConfig(t, filepath.Join(home, ".config", "masft"), `
database:
  path: /var/lib/masft/log.db
resolver:
  min_score: 3
output:
  render: never
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/masft/log.db", cfg.Database.Path)
	assert.Equal(t, 3, cfg.Resolver.MinScore)
	assert.Equal(t, RenderNever, cfg.Output.Render)
	assert.Equal(t, DefaultHistoryLimit, cfg.History.Limit)
}

func TestLoad_ExplicitFile(t *testing.T) {
	setupTestHome(t)
	path := writeConfig(t, t.TempDir(), `
catalog:
  path: ./taxonomy.json
history:
  limit: 25
metrics:
  file: /tmp/masft.prom
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./taxonomy.json", cfg.Catalog.Path)
	assert.Equal(t, 25, cfg.History.Limit)
	assert.Equal(t, "/tmp/masft.prom", cfg.Metrics.File)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	setupTestHome(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	setupTestHome(t)
	path := writeConfig(t, t.TempDir(), `
database:
  path: /from/file.db
resolver:
  min_score: 2
`)
	t.Setenv("MASFT_DATABASE_PATH", "/from/env.db")
	t.Setenv("MASFT_RESOLVER_MIN_SCORE", "5")
	t.Setenv("MASFT_OUTPUT_RENDER", "always")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.Database.Path)
	assert.Equal(t, 5, cfg.Resolver.MinScore)
	assert.Equal(t, RenderAlways, cfg.Output.Render)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"negative min score", "resolver:\n  min_score: -1\n", "min_score"},
		{"negative history limit", "history:\n  limit: -4\n", "history limit"},
		{"unknown render mode", "output:\n  render: sometimes\n", "render mode"},
		{"malformed yaml", "database: [unclosed\n", "failed to load config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestHome(t)
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FileTooLarge(t *testing.T) {
	setupTestHome(t)
	path := writeConfig(t, t.TempDir(), "# "+strings.Repeat("x", maxConfigFileSize)+"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"MASFT_DATABASE_PATH":      "database.path",
		"MASFT_RESOLVER_MIN_SCORE": "resolver.min_score",
		"MASFT_METRICS_FILE":       "metrics.file",
		"MASFT_VERBOSE":            "verbose",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestDefault_IsValid(t *testing.T) {
	setupTestHome(t)
	cfg := Default()
	require.NoError(t, cfg.Validate())
}
