package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Theme.Placeholder != "~" {
		t.Errorf("default placeholder = %q, want ~", cfg.Theme.Placeholder)
	}
	if cfg.Follow {
		t.Error("follow should default to off")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
follow = true

[theme]
foreground = "#AABBCC"
placeholder = "·"

[log]
level = "debug"
file = "/tmp/peruse.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Follow {
		t.Error("follow should be enabled")
	}
	if cfg.Theme.Foreground != "#AABBCC" {
		t.Errorf("foreground = %q", cfg.Theme.Foreground)
	}
	if cfg.PlaceholderRune() != '·' {
		t.Errorf("placeholder rune = %q", cfg.PlaceholderRune())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error, got %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want default", cfg.Log.Level)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "not [valid toml")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "warn"
`)

	t.Setenv(EnvPrefix+"LOG_LEVEL", "error")
	t.Setenv(EnvPrefix+"PLACEHOLDER", "*")
	t.Setenv(EnvPrefix+"FOLLOW", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "error" {
		t.Errorf("env should override file: level = %q", cfg.Log.Level)
	}
	if cfg.PlaceholderRune() != '*' {
		t.Errorf("placeholder rune = %q", cfg.PlaceholderRune())
	}
	if !cfg.Follow {
		t.Error("follow should be enabled via env")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"empty placeholder", func(c *Config) { c.Theme.Placeholder = "" }, true},
		{"multi-char placeholder", func(c *Config) { c.Theme.Placeholder = "ab" }, true},
		{"wide placeholder", func(c *Config) { c.Theme.Placeholder = "〜" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
