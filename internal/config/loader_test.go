package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultPriority != "medium" {
		t.Errorf("Expected default priority medium, got %q", cfg.DefaultPriority)
	}
	if cfg.UpcomingHorizonDays != 7 {
		t.Errorf("Expected horizon 7, got %d", cfg.UpcomingHorizonDays)
	}
	if cfg.Export.TagDelimiter != "," {
		t.Errorf("Expected tag delimiter ',', got %q", cfg.Export.TagDelimiter)
	}
}

func TestLoadWithoutFilesReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TINYTASK_DATA_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UpcomingHorizonDays != 7 || cfg.DefaultPriority != "medium" {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TINYTASK_DATA_DIR", "")

	dir := filepath.Join(home, ".tinytask")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `version: "1"
default_priority: high
upcoming_horizon_days: 14
export:
  tag_delimiter: ";"
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultPriority != "high" {
		t.Errorf("Expected high, got %q", cfg.DefaultPriority)
	}
	if cfg.UpcomingHorizonDays != 14 {
		t.Errorf("Expected 14, got %d", cfg.UpcomingHorizonDays)
	}
	if cfg.Export.TagDelimiter != ";" {
		t.Errorf("Expected ';', got %q", cfg.Export.TagDelimiter)
	}
}

func TestLoadEnvOverridesDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".tinytask")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("data_dir: /from/config\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TINYTASK_DATA_DIR", "/from/env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/from/env" {
		t.Errorf("Expected env to win, got %q", cfg.DataDir)
	}
}

func TestLoadGuardsInvalidHorizon(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TINYTASK_DATA_DIR", "")

	dir := filepath.Join(home, ".tinytask")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("upcoming_horizon_days: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UpcomingHorizonDays != 7 {
		t.Errorf("Expected fallback to 7, got %d", cfg.UpcomingHorizonDays)
	}
}

func TestWriteDefaultIsLoadable(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TINYTASK_DATA_DIR", "")

	dir := filepath.Join(home, ".tinytask")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultPriority != "medium" || cfg.UpcomingHorizonDays != 7 {
		t.Errorf("Template does not match defaults: %+v", cfg)
	}
}
