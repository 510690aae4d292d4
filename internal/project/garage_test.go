package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladmu/tire-calculator/internal/model"
)

func TestLoadGarageCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garage.json")

	g, err := LoadGarage(path)
	require.NoError(t, err)
	assert.Equal(t, len(model.DefaultGarage().Entries), len(g.Entries))

	_, err = os.Stat(path)
	assert.NoError(t, err, "default garage should be written to disk")

	again, err := LoadGarage(path)
	require.NoError(t, err)
	assert.Equal(t, g, again)
}

func TestSaveAndLoadGarage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garage.json")
	var g model.Garage
	e := g.Add("Track car", model.Input{Rim: 18, Width: 255, Profile: 35})

	require.NoError(t, SaveGarage(path, g))
	loaded, err := LoadGarage(path)
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 1)
	assert.Equal(t, e, loaded.Entries[0])
}

func TestLoadGarageCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garage.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2"), 0644))
	_, err := LoadGarage(path)
	assert.Error(t, err)
}

func TestMergeGarage(t *testing.T) {
	var existing model.Garage
	kept := existing.Add("Hatch", model.Input{Rim: 16, Width: 205, Profile: 55})

	imported := model.Garage{Entries: []model.GarageEntry{
		kept,
		model.NewGarageEntry("SUV", model.Input{Rim: 18, Width: 235, Profile: 60}),
	}}

	added := MergeGarage(&existing, imported)
	assert.Equal(t, 1, added)
	assert.Len(t, existing.Entries, 2)
	assert.NotNil(t, existing.FindByName("SUV"))
}
