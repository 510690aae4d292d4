package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vladmu/tire-calculator/internal/engine"
	"github.com/vladmu/tire-calculator/internal/model"
)

// buildTestResult returns the calculation for 205/70 R15, which has three
// main options and an alternative.
func buildTestResult() model.Results {
	return engine.CalculateNewSizes(model.Input{Rim: 15, Width: 205, Profile: 70})
}

func assertNonEmptyFile(t *testing.T, path string, minSize int64) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("file is empty")
	}
	if info.Size() < minSize {
		t.Errorf("file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	if err := ExportPDF(path, buildTestResult()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportPDF_NoRecommendation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	res := engine.CalculateNewSizes(model.Input{Rim: 12, Width: 100, Profile: 60})
	err := ExportPDF(path, res)
	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("no file should be written without a recommendation")
	}
}

func TestExportPDF_MainOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main_only.pdf")

	res := engine.CalculateNewSizes(model.Input{Rim: 17, Width: 225, Profile: 45})
	if res.BestAlternative != nil {
		t.Fatal("fixture should have no alternative")
	}
	if err := ExportPDF(path, res); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportPDF_BadOriginalKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")

	res := buildTestResult()
	res.InitialSizeKey = "not a size"
	if err := ExportPDF(path, res); err == nil {
		t.Fatal("expected error for unparseable original size")
	}
}

func TestExportComparisonPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.pdf")

	comps := engine.CompareSizes([]model.Input{
		{Rim: 15, Width: 205, Profile: 70},
		{Rim: 17, Width: 225, Profile: 45},
		{Rim: 12, Width: 100, Profile: 60},
	})
	if err := ExportComparisonPDF(path, comps); err != nil {
		t.Fatalf("ExportComparisonPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportComparisonPDF_ManyRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.pdf")

	var inputs []model.Input
	for r := model.MinR; r <= model.MaxR; r++ {
		lo, _, _ := model.LimitsFor(r)
		inputs = append(inputs, model.Input{Rim: r, Width: lo.Width, Profile: max(lo.Profile, model.MinProfileGlobal)})
		inputs = append(inputs, model.Input{Rim: r, Width: lo.Width + 20, Profile: max(lo.Profile, model.MinProfileGlobal)})
	}
	if err := ExportComparisonPDF(path, engine.CompareSizes(inputs)); err != nil {
		t.Fatalf("ExportComparisonPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 1000)
}

func TestExportComparisonPDF_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.pdf")
	if err := ExportComparisonPDF(path, nil); err == nil {
		t.Fatal("expected error for empty comparison, got nil")
	}
}
