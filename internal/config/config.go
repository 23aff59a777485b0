// Package config resolves exosky settings from defaults, an optional YAML
// file, EXOSKY_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sixworlds/exosky/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration.
type Config struct {
	CatalogURL     string `yaml:"catalog_url"`
	AssetBase      string `yaml:"asset_base"`
	DBPath         string `yaml:"db_path"`
	FetchTimeoutMs int    `yaml:"fetch_timeout_ms"`
	Workers        int    `yaml:"workers"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
}

// DefaultConfig returns a Config pointing at the public sixworlds assets.
// DBPath and LogFile are resolved under ~/.exosky when empty.
func DefaultConfig() Config {
	return Config{
		CatalogURL:     domain.DefaultCatalogURL,
		AssetBase:      domain.DefaultAssetBase,
		FetchTimeoutMs: 15000,
		Workers:        4,
		LogLevel:       "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (or
// $EXOSKY_CONFIG when path is empty) and the environment.
// A missing file is only an error when it was named explicitly.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("EXOSKY_CONFIG")
		explicit = path != ""
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			if explicit || !os.IsNotExist(err) {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.resolvePaths(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("EXOSKY_CATALOG_URL"); v != "" {
		cfg.CatalogURL = v
	}
	if v := os.Getenv("EXOSKY_ASSET_BASE"); v != "" {
		cfg.AssetBase = v
	}
	if v := os.Getenv("EXOSKY_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("EXOSKY_FETCH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutMs = n
		}
	}
	if v := os.Getenv("EXOSKY_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("EXOSKY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("EXOSKY_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

func (c *Config) resolvePaths() error {
	if c.DBPath != "" && c.LogFile != "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(home, ".exosky", "exosky.db")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(home, ".exosky", "exosky.log")
	}
	return nil
}

// FetchTimeout returns the catalog fetch timeout.
func (c Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutMs <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.FetchTimeoutMs) * time.Millisecond
}
