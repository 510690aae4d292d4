package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vladmu/tire-calculator/internal/model"
)

// DefaultConfigDir returns ~/.tirecalc, or ./.tirecalc when the home
// directory is unknown.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tirecalc")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// writeJSON marshals v with indentation and writes it to path, creating
// parent directories as needed.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SaveAppConfig persists config to path as JSON.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads an AppConfig from path. A missing file yields
// DefaultAppConfig. Fields absent from the file keep their defaults, and an
// invalid default size is replaced by the built-in one.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, fmt.Errorf("read config: %w", err)
	}

	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	normalizeConfig(&config)
	return config, nil
}

func normalizeConfig(c *model.AppConfig) {
	defaults := model.DefaultAppConfig()
	if c.RecentSizes == nil {
		c.RecentSizes = []string{}
	}
	if c.DefaultSize.Validate() != nil {
		c.DefaultSize = defaults.DefaultSize
	}
	if c.RateLimit <= 0 {
		c.RateLimit = defaults.RateLimit
	}
	if c.RateLimitSeconds <= 0 {
		c.RateLimitSeconds = defaults.RateLimitSeconds
	}
	switch c.Theme {
	case "light", "dark", "system":
	default:
		c.Theme = defaults.Theme
	}
}
