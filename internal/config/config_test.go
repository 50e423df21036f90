package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxExpansions != 0 {
		t.Errorf("MaxExpansions = %d, want 0 (default)", cfg.MaxExpansions)
	}
	if cfg.OneBased {
		t.Error("OneBased = true, want false (default)")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"max_expansions": 250000, "one_based": true}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxExpansions != 250000 {
		t.Errorf("MaxExpansions = %d, want 250000", cfg.MaxExpansions)
	}
	if !cfg.OneBased {
		t.Error("OneBased = false, want true")
	}
}

func TestLoad_NegativeLimitClamped(t *testing.T) {
	dir := t.TempDir()
	content := `{"max_expansions": -5}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxExpansions != 0 {
		t.Errorf("MaxExpansions = %d, want 0 (clamped)", cfg.MaxExpansions)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load should fail on invalid JSON")
	}
}
