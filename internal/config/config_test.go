//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/songlist.db",
			expected: filepath.Join(home, "songlist.db"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/library/songs.toml",
			expected: filepath.Join(home, "music", "library", "songs.toml"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/songlist.db",
			expected: "/var/lib/songlist.db",
		},
		{
			name:     "relative path unchanged",
			input:    "data/songlist.db",
			expected: "data/songlist.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("expected at least one config path")
	}
	if paths[len(paths)-1] != "config.toml" {
		t.Errorf("last path = %q, want config.toml (highest priority)", paths[len(paths)-1])
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	base := writeConfig(t, dir, "base.toml", `
icons = "unicode"
db_path = "/tmp/base.db"

[dispatch]
workers = 2
like_policy = "confirm"

[lastfm]
api_key = "key"
api_secret = "secret"
session_key = "session"
`)
	override := writeConfig(t, dir, "override.toml", `
icons = "nerd"
`)

	cfg, err := LoadFrom(base, override, filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want nerd (later file wins)", cfg.Icons)
	}
	if cfg.DBPath != "/tmp/base.db" {
		t.Errorf("DBPath = %q, want /tmp/base.db", cfg.DBPath)
	}
	if cfg.Dispatch.Workers != 2 {
		t.Errorf("Dispatch.Workers = %d, want 2", cfg.Dispatch.Workers)
	}
	if cfg.Dispatch.LikePolicy != "confirm" {
		t.Errorf("Dispatch.LikePolicy = %q, want confirm", cfg.Dispatch.LikePolicy)
	}
	if !cfg.HasLastfmConfig() {
		t.Error("HasLastfmConfig() = false, want true")
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.toml", "icons = [unterminated")

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestHasLastfmConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      LastfmConfig
		expected bool
	}{
		{"fully configured", LastfmConfig{APIKey: "k", APISecret: "s", SessionKey: "sk"}, true},
		{"missing session", LastfmConfig{APIKey: "k", APISecret: "s"}, false},
		{"missing secret", LastfmConfig{APIKey: "k", SessionKey: "sk"}, false},
		{"empty", LastfmConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Lastfm: tt.cfg}
			if got := cfg.HasLastfmConfig(); got != tt.expected {
				t.Errorf("HasLastfmConfig() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetDispatchConfig_Defaults(t *testing.T) {
	cfg := &Config{}

	d := cfg.GetDispatchConfig()

	if d.BufferSize != 64 {
		t.Errorf("BufferSize = %d, want 64", d.BufferSize)
	}
	if d.Workers != 4 {
		t.Errorf("Workers = %d, want 4", d.Workers)
	}
	if d.Timeout() != 10*time.Second {
		t.Errorf("Timeout() = %v, want 10s", d.Timeout())
	}
	if d.LikePolicy != "negate" {
		t.Errorf("LikePolicy = %q, want negate", d.LikePolicy)
	}
}

func TestGetDispatchConfig_InvalidValues(t *testing.T) {
	cfg := &Config{Dispatch: DispatchConfig{
		BufferSize:  -1,
		Workers:     1000,
		TimeoutSecs: -5,
		LikePolicy:  "sometimes",
	}}

	d := cfg.GetDispatchConfig()

	if d.BufferSize != 64 || d.Workers != 4 || d.TimeoutSecs != 10 || d.LikePolicy != "negate" {
		t.Errorf("invalid values not replaced by defaults: %+v", d)
	}
}

func TestGetDispatchConfig_CustomValues(t *testing.T) {
	cfg := &Config{Dispatch: DispatchConfig{
		BufferSize:  8,
		Workers:     1,
		TimeoutSecs: 3,
		LikePolicy:  "confirm",
	}}

	d := cfg.GetDispatchConfig()

	if d != cfg.Dispatch {
		t.Errorf("GetDispatchConfig() = %+v, want %+v", d, cfg.Dispatch)
	}
}
