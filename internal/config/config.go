package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds framely's file-based preferences. The storage file itself
// carries per-store settings; this covers everything decided before the
// store is opened.
type Config struct {
	General GeneralConfig `toml:"general"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// StoragePath overrides the default database location. A .json extension
	// selects the JSON backend instead of SQLite.
	StoragePath string `toml:"storage_path,omitempty"`
	// StatsDays is the default lookback window for the stats command.
	StatsDays int `toml:"stats_days"`
	Debug     bool `toml:"debug"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			StatsDays: 7,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "framely")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "framely")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultStoragePath returns the database location used when the config
// does not override it.
func DefaultStoragePath() string {
	return filepath.Join(Dir(), "framely.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
