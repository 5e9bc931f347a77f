package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Harness.Tolerance != 1e-9 {
		t.Errorf("Expected Tolerance=1e-9, got %v", cfg.Harness.Tolerance)
	}
	if cfg.Harness.ProbeStep != 0.25 {
		t.Errorf("Expected ProbeStep=0.25, got %v", cfg.Harness.ProbeStep)
	}
	if cfg.Harness.MinimizeBudget != 64 {
		t.Errorf("Expected MinimizeBudget=64, got %d", cfg.Harness.MinimizeBudget)
	}

	if cfg.Display.NumberFormat != "both" {
		t.Errorf("Expected NumberFormat=both, got %s", cfg.Display.NumberFormat)
	}
	if !cfg.Display.ShowFields {
		t.Error("Expected ShowFields=true")
	}

	if cfg.Posit.ES != 2 {
		t.Errorf("Expected ES=2, got %d", cfg.Posit.ES)
	}
	if cfg.Posit.Useed != 16 {
		t.Errorf("Expected Useed=16, got %d", cfg.Posit.Useed)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Harness.Tolerance = 1e-6
	cfg.Harness.StopOnFailure = true
	cfg.Display.ColorOutput = false
	cfg.Display.NumberFormat = "decimal"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Harness.Tolerance != 1e-6 {
		t.Errorf("Expected Tolerance=1e-6, got %v", loaded.Harness.Tolerance)
	}
	if !loaded.Harness.StopOnFailure {
		t.Error("Expected StopOnFailure=true")
	}
	if loaded.Display.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
	if loaded.Display.NumberFormat != "decimal" {
		t.Errorf("Expected NumberFormat=decimal, got %s", loaded.Display.NumberFormat)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}
	if cfg.Harness.Tolerance != 1e-9 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[harness]
tolerance = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}
