package export

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladmu/tire-calculator/internal/engine"
	"github.com/vladmu/tire-calculator/internal/importer"
	"github.com/vladmu/tire-calculator/internal/model"
)

func TestExportDXF_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheels.dxf")

	require.NoError(t, ExportDXF(path, buildTestResult()))
	assertNonEmptyFile(t, path, 200)

	result := importer.ImportDXF(path)
	require.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)

	var keys []string
	for _, s := range result.Sizes {
		keys = append(keys, s.Input.Key())
	}
	assert.Equal(t, []string{"205/70 R15", "205/50 R18", "215/50 R18", "225/35 R20", "235/25 R22"}, keys)
}

func TestExportDXF_NoRecommendation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.dxf")

	res := engine.CalculateNewSizes(model.Input{Rim: 12, Width: 100, Profile: 60})
	if err := ExportDXF(path, res); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
}

func TestWheelsFor(t *testing.T) {
	wheels, err := wheelsFor(buildTestResult())
	require.NoError(t, err)
	require.Len(t, wheels, 5)

	assert.Equal(t, KindOriginal, wheels[0].Kind)
	assert.Equal(t, model.Size{Rim: 15, Width: 205, Profile: 70}, wheels[0].Size)

	var best []string
	for _, w := range wheels {
		if w.Best {
			best = append(best, w.Size.Key())
		}
	}
	assert.Equal(t, []string{"225/35 R20"}, best)
	assert.Equal(t, KindAlternative, wheels[4].Kind)

	// 235/25 R22: 558.8 + 2*58.75
	assert.InDelta(t, 676.3, maxDiameter(wheels), 0.01)
}
