// Package config loads the optional TOML configuration file: highlight
// theme overrides and logging settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Theme Theme `toml:"theme"`
	Log   Log   `toml:"log"`
}

// Theme holds one SGR parameter string per highlight category, e.g.
// "1;34". An empty value means the terminal's default rendition.
type Theme struct {
	BlockComment  string `toml:"block_comment"`
	LineComment   string `toml:"line_comment"`
	StringLiteral string `toml:"string_literal"`
	Identifier    string `toml:"identifier"`
	Number        string `toml:"number"`
	Punctuation   string `toml:"punctuation"`
}

// Log holds diagnostic logging settings.
type Log struct {
	Level string `toml:"level"` // zerolog level name, default "warn"
	Path  string `toml:"path"`  // log file path, default under the state dir
}

// Default returns the compiled-in configuration: the built-in color
// mapping and warn-level logging.
func Default() Config {
	return Config{
		Theme: Theme{
			BlockComment:  "2",
			LineComment:   "30",
			StringLiteral: "1;33",
			Identifier:    "1;34",
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ted", "config.toml")
}

// Load reads configuration from path. A missing file is not an error: the
// defaults apply. Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config file: %w", err)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
