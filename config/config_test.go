package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"wordlens/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analysis.Language != "russian" {
		t.Errorf("expected Language=russian, got %s", cfg.Analysis.Language)
	}
	if cfg.Analysis.SentinelIntensity != "zero" {
		t.Errorf("expected SentinelIntensity=zero, got %s", cfg.Analysis.SentinelIntensity)
	}
	if cfg.Analysis.SpamSource != "all" {
		t.Errorf("expected SpamSource=all, got %s", cfg.Analysis.SpamSource)
	}
	if !cfg.Highlight.Repeats || cfg.Highlight.StopWords {
		t.Errorf("unexpected highlight defaults: %+v", cfg.Highlight)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("expected TTL=10m, got %v", cfg.Cache.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "wordlens.yaml")

	content := `
analysis:
  language: english
  sentinel_intensity: max
readability:
  ease_base: 200
highlight:
  stopwords: true
cache:
  ttl: 30s
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analysis.Language != "english" {
		t.Errorf("expected Language=english, got %s", cfg.Analysis.Language)
	}
	if cfg.Analysis.SentinelIntensity != "max" {
		t.Errorf("expected SentinelIntensity=max, got %s", cfg.Analysis.SentinelIntensity)
	}
	if cfg.Analysis.SpamSource != "all" {
		t.Errorf("expected untouched SpamSource=all, got %s", cfg.Analysis.SpamSource)
	}
	if !cfg.Highlight.StopWords {
		t.Error("expected StopWords=true")
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("expected TTL=30s, got %v", cfg.Cache.TTL)
	}

	ease := cfg.EaseCoefficients(domain.English)
	if ease.Base != 200 || ease.ASL != 1.015 || ease.ASW != 84.6 {
		t.Errorf("unexpected ease coefficients: %+v", ease)
	}
}

func TestLoad_InvalidEnum(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "wordlens.yaml")

	content := `
analysis:
  spam_source: everything
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid spam_source")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "wordlens.yaml")

	content := `
analysis:
  spam_source: retained
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analysis.SpamSource != "retained" {
		t.Errorf("expected SpamSource=retained, got %s", cfg.Analysis.SpamSource)
	}
}

func TestLoadFromDir_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "wordlens.toml")

	content := `
[analysis]
language = "english"

[logging]
level = "debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analysis.Language != "english" {
		t.Errorf("expected Language=english, got %s", cfg.Analysis.Language)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
	if cfg.Analysis.SentinelIntensity != "zero" {
		t.Errorf("expected default SentinelIntensity=zero, got %s", cfg.Analysis.SentinelIntensity)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "wordlens.yaml")

	cfg := DefaultConfig()
	cfg.Analysis.SentinelIntensity = "max"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Analysis.SentinelIntensity != "max" {
		t.Errorf("expected SentinelIntensity=max, got %s", loaded.Analysis.SentinelIntensity)
	}
}

func TestReportDBPath(t *testing.T) {
	path := ReportDBPath("/home/user/texts")
	expected := filepath.Join("/home/user/texts", ".wordlens", "reports.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
