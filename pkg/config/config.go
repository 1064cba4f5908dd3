// Package config loads optional user configuration for bomviz.
//
// Configuration lives in a TOML file at $XDG_CONFIG_HOME/bomviz/config.toml
// (falling back to ~/.config/bomviz/config.toml). It supplies defaults for
// the diagram flags; command-line flags always take precedence. A missing
// config file is not an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appName is the directory name used under the XDG config home.
const appName = "bomviz"

// Config holds user defaults for diagram generation.
type Config struct {
	// Compact trims labels down to the essential fields.
	Compact bool `toml:"compact"`

	// MaxPackages caps the number of package nodes (0 means no cap).
	MaxPackages int `toml:"max_packages"`

	// ExcludeExternalRefs drops external reference lines (CPE, PURL) from labels.
	ExcludeExternalRefs bool `toml:"exclude_external_refs"`
}

// Path returns the config file location using the XDG standard.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file from the standard location.
// A missing file yields the zero config and no error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads and decodes a TOML config file.
// A missing file yields the zero config and no error; a malformed file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
