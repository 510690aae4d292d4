package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vladmu/tire-calculator/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	cfg.DefaultSize = model.Input{Rim: 16, Width: 205, Profile: 55}
	garage := model.DefaultGarage()

	if err := ExportAllData(path, cfg, garage); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", backup.Config.Theme)
	}
	if backup.Config.DefaultSize != cfg.DefaultSize {
		t.Errorf("default size did not round-trip: %+v", backup.Config.DefaultSize)
	}
	if len(backup.Garage.Entries) != len(garage.Entries) {
		t.Errorf("expected %d garage entries, got %d", len(garage.Entries), len(backup.Garage.Entries))
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"config": {}}`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ImportAllData(path)
	if !errors.Is(err, ErrInvalidBackup) {
		t.Errorf("expected ErrInvalidBackup, got %v", err)
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	if _, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
