// Package config loads the xtal configuration file.
//
// Configuration is optional: a missing file yields the built-in
// defaults, while a malformed one is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"xtal/internal/crystal"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable editor settings.
type Config struct {
	// DefaultU is the thermal factor assigned to newly created atoms,
	// in the U convention.
	DefaultU float64 `yaml:"default_u"`

	// ThermalDisplay is the startup display convention, "U" or "B".
	ThermalDisplay string `yaml:"thermal_display"`

	// LibraryPath is the SQLite site library location.
	LibraryPath string `yaml:"library_path"`
}

// Default returns the built-in configuration. The default thermal
// factor corresponds to B = 1 Å², i.e. U = 1/(8π²).
func Default() Config {
	homeDir, _ := os.UserHomeDir()
	return Config{
		DefaultU:       crystal.BToU,
		ThermalDisplay: string(crystal.DisplayU),
		LibraryPath:    filepath.Join(homeDir, ".xtal", "sites.db"),
	}
}

// Load reads the configuration at path, filling unset fields from the
// defaults. A nonexistent file returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !crystal.DisplayType(c.ThermalDisplay).Valid() {
		return fmt.Errorf("thermal_display %q: %w", c.ThermalDisplay, crystal.ErrUnknownDisplayType)
	}
	if c.LibraryPath == "" {
		return fmt.Errorf("library_path must not be empty")
	}
	return nil
}

// DisplayType returns the configured startup convention.
func (c Config) DisplayType() crystal.DisplayType {
	return crystal.DisplayType(c.ThermalDisplay)
}
