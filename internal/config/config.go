// Package config loads viewer configuration from a TOML file with
// environment variable overrides layered on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "PERUSE_"

// Config holds all viewer settings.
type Config struct {
	Theme  Theme `toml:"theme"`
	Log    Log   `toml:"log"`
	Follow bool  `toml:"follow"`
}

// Theme configures colors and glyphs. Colors are "#RGB" or "#RRGGBB" hex
// strings; empty means the terminal default.
type Theme struct {
	Foreground  string `toml:"foreground"`
	Background  string `toml:"background"`
	Placeholder string `toml:"placeholder"`
}

// Log configures the application logger.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Theme: Theme{
			Placeholder: "~",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location,
// or "" when the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "peruse", "config.toml")
}

// Load reads configuration from the TOML file at path, then applies
// environment overrides. A missing file is not an error: defaults plus
// environment apply. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays PERUSE_* environment variables onto the configuration.
// Empty values are treated as valid values, not as unset.
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		EnvPrefix + "LOG_LEVEL":   &c.Log.Level,
		EnvPrefix + "LOG_FILE":    &c.Log.File,
		EnvPrefix + "FOREGROUND":  &c.Theme.Foreground,
		EnvPrefix + "BACKGROUND":  &c.Theme.Background,
		EnvPrefix + "PLACEHOLDER": &c.Theme.Placeholder,
	}
	for env, target := range overrides {
		if val, ok := os.LookupEnv(env); ok {
			*target = val
		}
	}

	if val, ok := os.LookupEnv(EnvPrefix + "FOLLOW"); ok {
		if follow, err := strconv.ParseBool(val); err == nil {
			c.Follow = follow
		}
	}
}

// Validate checks settings that would otherwise fail deep inside the
// renderer or logger.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", c.Log.Level)
	}

	if n := utf8.RuneCountInString(c.Theme.Placeholder); n != 1 {
		return fmt.Errorf("placeholder must be a single character, got %q", c.Theme.Placeholder)
	}

	return nil
}

// PlaceholderRune returns the placeholder glyph as a rune.
// Call only after Validate has passed.
func (c Config) PlaceholderRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Theme.Placeholder)
	return r
}
