package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vladmu/tire-calculator/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultSize = model.Input{Rim: 17, Width: 225, Profile: 45}
	cfg.Theme = "dark"
	cfg.RedisAddr = "localhost:6379"
	cfg.RecentSizes = []string{"225/45 R17", "205/55 R16"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.DefaultSize != cfg.DefaultSize {
		t.Errorf("expected default size %+v, got %+v", cfg.DefaultSize, loaded.DefaultSize)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.RedisAddr != "localhost:6379" {
		t.Errorf("expected RedisAddr to round-trip, got %q", loaded.RedisAddr)
	}
	if len(loaded.RecentSizes) != 2 {
		t.Errorf("expected 2 recent sizes, got %d", len(loaded.RecentSizes))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme, got %s", cfg.Theme)
	}
}

func TestLoadAppConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"theme": "neon", "default_size": {"rim": 30, "width": 225, "profile": 45}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	defaults := model.DefaultAppConfig()
	if cfg.Theme != defaults.Theme {
		t.Errorf("unknown theme should fall back to %s, got %s", defaults.Theme, cfg.Theme)
	}
	if cfg.DefaultSize != defaults.DefaultSize {
		t.Errorf("invalid default size should be replaced, got %+v", cfg.DefaultSize)
	}
	if cfg.APIAddr != defaults.APIAddr {
		t.Errorf("absent APIAddr should keep default, got %q", cfg.APIAddr)
	}
	if cfg.RecentSizes == nil {
		t.Error("RecentSizes should not be nil")
	}
}

func TestLoadAppConfigRateLimitDefaults(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero", `{"rate_limit": 0, "rate_limit_seconds": 0}`},
		{"negative", `{"rate_limit": -5, "rate_limit_seconds": -1}`},
	}
	defaults := model.DefaultAppConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadAppConfig(path)
			if err != nil {
				t.Fatalf("LoadAppConfig failed: %v", err)
			}
			if cfg.RateLimit != defaults.RateLimit {
				t.Errorf("RateLimit = %d, want %d", cfg.RateLimit, defaults.RateLimit)
			}
			if cfg.RateLimitSeconds != defaults.RateLimitSeconds {
				t.Errorf("RateLimitSeconds = %d, want %d", cfg.RateLimitSeconds, defaults.RateLimitSeconds)
			}
		})
	}
}

func TestLoadAppConfigCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("expected error for corrupt config")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("expected config.json, got %s", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != ".tirecalc" {
		t.Errorf("expected .tirecalc directory, got %s", filepath.Dir(path))
	}
}
