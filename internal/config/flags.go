package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by every exosky command.
const (
	FlagConfig     = "config"
	FlagCatalogURL = "catalog-url"
	FlagAssetBase  = "asset-base"
	FlagDB         = "db"
	FlagVerbose    = "verbose"
)

// RegisterFlags adds the persistent configuration flags to fs. Defaults are
// left empty so ApplyFlags can tell set flags from unset ones.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Path to a YAML config file")
	fs.String(FlagCatalogURL, "", "URL of the planet catalog JSON document")
	fs.String(FlagAssetBase, "", "Base URL of per-planet image assets")
	fs.String(FlagDB, "", "Path to the workspace database")
	fs.BoolP(FlagVerbose, "v", false, "Enable debug logging")
}

// ApplyFlags overrides cfg with every flag the user set explicitly.
func ApplyFlags(fs *pflag.FlagSet, cfg *Config) error {
	if fs.Changed(FlagCatalogURL) {
		v, err := fs.GetString(FlagCatalogURL)
		if err != nil {
			return err
		}
		cfg.CatalogURL = v
	}
	if fs.Changed(FlagAssetBase) {
		v, err := fs.GetString(FlagAssetBase)
		if err != nil {
			return err
		}
		cfg.AssetBase = v
	}
	if fs.Changed(FlagDB) {
		v, err := fs.GetString(FlagDB)
		if err != nil {
			return err
		}
		cfg.DBPath = v
	}
	if fs.Changed(FlagVerbose) {
		v, err := fs.GetBool(FlagVerbose)
		if err != nil {
			return err
		}
		if v {
			cfg.LogLevel = "debug"
		}
	}
	return nil
}

// ConfigPath returns the --config value, or "" when unset.
func ConfigPath(fs *pflag.FlagSet) string {
	v, _ := fs.GetString(FlagConfig)
	return v
}
