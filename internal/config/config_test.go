package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sixworlds/exosky/internal/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"EXOSKY_CONFIG", "EXOSKY_CATALOG_URL", "EXOSKY_ASSET_BASE", "EXOSKY_DB",
		"EXOSKY_FETCH_TIMEOUT_MS", "EXOSKY_WORKERS", "EXOSKY_LOG_LEVEL", "EXOSKY_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCatalogURL, cfg.CatalogURL)
	assert.Equal(t, domain.DefaultAssetBase, cfg.AssetBase)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout())
	assert.Equal(t, "exosky.db", filepath.Base(cfg.DBPath))
	assert.Equal(t, "exosky.log", filepath.Base(cfg.LogFile))
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXOSKY_CATALOG_URL", "http://localhost:8080/assets/planets.json")
	t.Setenv("EXOSKY_FETCH_TIMEOUT_MS", "2500")
	t.Setenv("EXOSKY_WORKERS", "0")
	t.Setenv("EXOSKY_DB", ":memory:")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/assets/planets.json", cfg.CatalogURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.FetchTimeout())
	assert.Equal(t, 4, cfg.Workers, "non-positive worker count is ignored")
	assert.Equal(t, ":memory:", cfg.DBPath)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "exosky.yaml")
	require.NoError(t, os.WriteFile(path, []byte("asset_base: http://files/assets\nworkers: 8\nlog_level: warn\n"), 0o644))
	t.Setenv("EXOSKY_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://files/assets", cfg.AssetBase)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "error", cfg.LogLevel, "env wins over file")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--asset-base", "http://x/assets", "-v"}))

	cfg := DefaultConfig()
	cfg.CatalogURL = "from-env"
	require.NoError(t, ApplyFlags(fs, &cfg))

	assert.Equal(t, "http://x/assets", cfg.AssetBase)
	assert.Equal(t, "from-env", cfg.CatalogURL, "unset flags leave values alone")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "", ConfigPath(fs))
}
