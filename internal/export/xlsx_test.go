package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladmu/tire-calculator/internal/engine"
	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestExportExcel_Sheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sizes.xlsx")

	comps := engine.CompareSizes([]model.Input{
		{Rim: 15, Width: 205, Profile: 70},
		{Rim: 12, Width: 100, Profile: 60},
	})
	require.NoError(t, ExportExcel(path, comps))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetRecommendations, SheetLimits}, f.GetSheetList())

	rows, err := f.GetRows(SheetRecommendations)
	require.NoError(t, err)
	// header + 3 main + 1 alternative + 1 "NONE" row
	require.Len(t, rows, 6)
	assert.Equal(t, "Label", rows[0][0])
	assert.Equal(t, "Best", rows[0][11])

	assert.Equal(t, "205/70 R15", rows[1][0])
	assert.Equal(t, KindMain, rows[1][3])
	assert.Equal(t, "205/50 R18", rows[1][4])

	// 225/35 R20 is the best main option
	assert.Equal(t, "225/35 R20", rows[3][4])
	require.Len(t, rows[3], 12)
	assert.Equal(t, "yes", rows[3][11])

	assert.Equal(t, KindAlternative, rows[4][3])
	assert.Equal(t, "235/25 R22", rows[4][4])

	assert.Equal(t, "100/60 R12", rows[5][0])
	assert.Equal(t, "NONE", rows[5][3])
}

func TestExportExcel_LimitsSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.xlsx")

	comps := engine.CompareSizes([]model.Input{{Rim: 17, Width: 225, Profile: 45}})
	require.NoError(t, ExportExcel(path, comps))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetLimits)
	require.NoError(t, err)
	require.Len(t, rows, model.RimCount+1)
	assert.Equal(t, []string{"12", "135", "205", "60", "90"}, rows[1])
	assert.Equal(t, []string{"25", "245", "355", "20", "35"}, rows[model.RimCount])
}

func TestExportExcel_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.xlsx")
	if err := ExportExcel(path, nil); err == nil {
		t.Fatal("expected error for empty comparison list")
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 8.3, round1(8.26))
	assert.Equal(t, -5.8, round1(-5.79))
	assert.Equal(t, 1.23, round2(1.2349))
}
