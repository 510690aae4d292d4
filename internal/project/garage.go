package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vladmu/tire-calculator/internal/model"
)

// DefaultGaragePath returns ~/.tirecalc/garage.json.
func DefaultGaragePath() string {
	return filepath.Join(DefaultConfigDir(), "garage.json")
}

// SaveGarage writes the garage to path as JSON.
func SaveGarage(path string, g model.Garage) error {
	return writeJSON(path, g)
}

// LoadGarage reads the garage from path. If the file does not exist, the
// default garage is written there and returned.
func LoadGarage(path string) (model.Garage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			g := model.DefaultGarage()
			return g, SaveGarage(path, g)
		}
		return model.Garage{}, fmt.Errorf("read garage: %w", err)
	}
	var g model.Garage
	if err := json.Unmarshal(data, &g); err != nil {
		return model.Garage{}, fmt.Errorf("parse garage: %w", err)
	}
	return g, nil
}

// MergeGarage adds the entries of imported whose IDs are not already in
// existing and returns the number added.
func MergeGarage(existing *model.Garage, imported model.Garage) int {
	added := 0
	for _, e := range imported.Entries {
		if existing.FindByID(e.ID) != nil {
			continue
		}
		existing.Entries = append(existing.Entries, e)
		added++
	}
	return added
}
