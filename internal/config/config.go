// Package config loads statline configuration from an optional YAML
// file and from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted for defaults.
const (
	EnvOptions        = "STATLINE_OPTIONS"
	EnvUnderline      = "STATLINE_UNDERLINE"
	EnvNerdFonts      = "STATLINE_NERDFONTS"
	EnvIconsSecondary = "STATLINE_ICONS_SECONDARY"
)

// Config holds the user-tunable settings.
type Config struct {
	// Options is the default option list rendered when no --include is
	// given.
	Options []string `yaml:"options"`

	Underline      bool `yaml:"underline"`
	NerdFonts      bool `yaml:"nerdfonts"`
	IconsSecondary bool `yaml:"icons_secondary"`

	Theme    string `yaml:"theme"`
	DebugLog string `yaml:"debug_log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme: "default",
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "statline", "config.yaml")
}

// Load reads the config file at path, or the default location when
// path is empty. A missing file is not an error; a malformed one is.
// Environment variables are applied on top of whatever the file set.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// No config file is the common case.
		default:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvOptions); ok {
		c.Options = strings.Fields(v)
	}
	if v, ok := os.LookupEnv(EnvUnderline); ok {
		c.Underline = boolish(v)
	}
	if v, ok := os.LookupEnv(EnvNerdFonts); ok {
		c.NerdFonts = boolish(v)
	}
	if v, ok := os.LookupEnv(EnvIconsSecondary); ok {
		c.IconsSecondary = boolish(v)
	}
}

// boolish interprets the numeric-or-word flag values accepted in the
// environment: "1", "true", "yes", and "on" enable, everything else
// disables.
func boolish(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
