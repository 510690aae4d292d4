package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/vladmu/tire-calculator/internal/model"
)

const backupVersion = "1.0.0"

// ErrInvalidBackup is returned for backup files without a version.
var ErrInvalidBackup = errors.New("invalid backup file: missing version field")

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    model.AppConfig `json:"config"`
	Garage    model.Garage    `json:"garage"`
}

// ExportAllData writes config and garage to a single JSON file.
func ExportAllData(exportPath string, config model.AppConfig, garage model.Garage) error {
	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Garage:    garage,
	}
	if err := writeJSON(exportPath, backup); err != nil {
		return fmt.Errorf("export backup: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file. The caller applies the result.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, ErrInvalidBackup
	}
	normalizeConfig(&backup.Config)
	return backup, nil
}
