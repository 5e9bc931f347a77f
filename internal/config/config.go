// Package config loads the TOML-backed settings for the ambient tooling:
// accuracy tolerances, probe steps, and display formatting. The harness CLI
// reads the Harness section; the inspector TUI loads no config. The posit
// core itself takes no configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the ambient tooling's settings. Only the Harness section is
// read by a tool (cmd/harness).
type Config struct {
	// Harness settings govern the numeric end-to-end checks (§8 dot product
	// and golden-section minimizer).
	Harness struct {
		Tolerance      float64 `toml:"tolerance"`
		ProbeStep      float64 `toml:"probe_step"`
		MinimizeBudget int     `toml:"minimize_budget"`
		StopOnFailure  bool    `toml:"stop_on_failure"`
	} `toml:"harness"`

	// Display holds rendering preferences for posits and their decoded
	// fields. Neither the harness nor the inspector reads them.
	Display struct {
		ColorOutput  bool   `toml:"color_output"`
		NumberFormat string `toml:"number_format"` // bits, decimal, both
		ShowFields   bool   `toml:"show_fields"`
	} `toml:"display"`

	// Posit documents the field widths this build was compiled against.
	// It is informational only — ES is a compile-time constant in the
	// posit package, not something this config can change.
	Posit struct {
		ES    int `toml:"es"`
		Useed int `toml:"useed"`
	} `toml:"posit"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Harness.Tolerance = 1e-9
	cfg.Harness.ProbeStep = 0.25
	cfg.Harness.MinimizeBudget = 64
	cfg.Harness.StopOnFailure = false

	cfg.Display.ColorOutput = true
	cfg.Display.NumberFormat = "both"
	cfg.Display.ShowFields = true

	cfg.Posit.ES = 2
	cfg.Posit.Useed = 16

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "goposit")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "goposit")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file, returning defaults
// if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
