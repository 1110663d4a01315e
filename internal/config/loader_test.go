package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	text := `resource:
  path: ./resources/english.lang
input:
  path: ./input/phrases.txt
normalizer:
  workers: 3
  terms:
    - potato
    - carrot
logger:
  level: info
  file_path: app.log
database:
  dsn: postgres://localhost:5432/lexnorm
report:
  dir: ./reports
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.Resource.Path != "./resources/english.lang" {
		t.Errorf("Resource.Path = %q", cfg.Resource.Path)
	}
	if cfg.Normalizer.Workers != 3 {
		t.Errorf("Normalizer.Workers = %d, want 3", cfg.Normalizer.Workers)
	}
	if len(cfg.Normalizer.Terms) != 2 || cfg.Normalizer.Terms[0] != "potato" {
		t.Errorf("Normalizer.Terms = %v", cfg.Normalizer.Terms)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("Logger.Level = %q, want info", cfg.Logger.Level)
	}
	if cfg.Database.DSN != "postgres://localhost:5432/lexnorm" {
		t.Errorf("Database.DSN = %q", cfg.Database.DSN)
	}
	if cfg.Report.Dir != "./reports" {
		t.Errorf("Report.Dir = %q", cfg.Report.Dir)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadConfig() on a missing file succeeded")
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logger: [unclosed"), 0644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() on malformed YAML succeeded")
	}
}
