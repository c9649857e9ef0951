package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons       string `koanf:"icons"`        // "nerd", "unicode", or "none"
	DBPath      string `koanf:"db_path"`      // empty means the XDG data directory
	LogFile     string `koanf:"log_file"`     // empty disables logging
	LibraryFile string `koanf:"library_file"` // TOML catalog imported at startup

	// Last.fm love/unlove (enables remote likes when configured)
	Lastfm LastfmConfig `koanf:"lastfm"`

	// Controller settings
	Dispatch DispatchConfig `koanf:"dispatch"`
}

// LastfmConfig holds Last.fm credentials.
type LastfmConfig struct {
	APIKey     string `koanf:"api_key"`
	APISecret  string `koanf:"api_secret"`
	SessionKey string `koanf:"session_key"`
}

// DispatchConfig tunes how commands reach and are run by the controller.
type DispatchConfig struct {
	BufferSize  int    `koanf:"buffer_size"`  // Action channel capacity (default: 64)
	Workers     int    `koanf:"workers"`      // Concurrent like operations (default: 4)
	TimeoutSecs int    `koanf:"timeout_secs"` // Per-operation timeout (default: 10)
	LikePolicy  string `koanf:"like_policy"`  // "negate" or "confirm" (default: "negate")
}

// Load reads the default config locations.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order; later files win.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.LibraryFile = expandPath(cfg.LibraryFile)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/songlist/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "songlist", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasLastfmConfig returns true if Last.fm love/unlove is configured.
func (c *Config) HasLastfmConfig() bool {
	return c.Lastfm.APIKey != "" && c.Lastfm.APISecret != "" && c.Lastfm.SessionKey != ""
}

// GetDispatchConfig returns the dispatch configuration with defaults applied.
func (c *Config) GetDispatchConfig() DispatchConfig {
	cfg := c.Dispatch

	// Apply defaults
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 64
	}
	if cfg.Workers <= 0 || cfg.Workers > 64 {
		cfg.Workers = 4
	}
	if cfg.TimeoutSecs <= 0 {
		cfg.TimeoutSecs = 10
	}
	if cfg.LikePolicy != "negate" && cfg.LikePolicy != "confirm" {
		cfg.LikePolicy = "negate"
	}

	return cfg
}

// Timeout returns the per-operation timeout.
func (d DispatchConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSecs) * time.Second
}
