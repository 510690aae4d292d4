package export

import (
	"fmt"

	"github.com/vladmu/tire-calculator/internal/engine"
	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook written by ExportExcel.
const (
	SheetRecommendations = "Recommendations"
	SheetLimits          = "Limits"
)

var recommendationHeaders = []interface{}{
	"Label", "Original", "Original diameter (mm)", "Kind", "Size", "Rim", "Width",
	"Profile", "Diameter (mm)", "Delta (mm)", "Delta (%)", "Best",
}

// ExportExcel writes one row per recommended size of every comparison, plus
// the limits table on a second sheet.
func ExportExcel(path string, comps []engine.Comparison) error {
	if len(comps) == 0 {
		return fmt.Errorf("no sizes to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRecommendations); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetLimits); err != nil {
		return fmt.Errorf("add limits sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeRecommendations(f, comps, bold); err != nil {
		return err
	}
	if err := writeLimits(f, bold); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRecommendations(f *excelize.File, comps []engine.Comparison, headerStyle int) error {
	rows := [][]interface{}{recommendationHeaders}
	for _, c := range comps {
		res := c.Results
		if !res.HasRecommendation() {
			rows = append(rows, []interface{}{c.Label, res.InitialSizeKey, res.Diameter, "NONE"})
			continue
		}
		for _, o := range res.Main {
			rows = append(rows, optionRow(c, KindMain, o, res.IsBestMain(o)))
		}
		if alt := res.BestAlternative; alt != nil {
			rows = append(rows, optionRow(c, KindAlternative, *alt, false))
		}
	}

	if err := setRows(f, SheetRecommendations, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetRecommendations, "A1", "L1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	return f.SetColWidth(SheetRecommendations, "A", "L", 16)
}

func optionRow(c engine.Comparison, kind string, o model.Option, best bool) []interface{} {
	mark := ""
	if best {
		mark = "yes"
	}
	return []interface{}{
		c.Label, c.Results.InitialSizeKey, round1(c.Results.Diameter), kind, o.Size, o.Rim, o.Width,
		o.Profile, round1(o.Diameter), round1(o.Delta), round2(o.DeltaPercent), mark,
	}
}

func writeLimits(f *excelize.File, headerStyle int) error {
	rows := [][]interface{}{{"Rim", "Min width", "Max width", "Min profile", "Max profile"}}
	for _, r := range model.LimitRows() {
		rows = append(rows, []interface{}{r.Rim, r.Min.Width, r.Max.Width, r.Min.Profile, r.Max.Profile})
	}
	if err := setRows(f, SheetLimits, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetLimits, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func round1(v float64) float64 { return roundTo(v, 10) }
func round2(v float64) float64 { return roundTo(v, 100) }

func roundTo(v, factor float64) float64 {
	if v < 0 {
		return -roundTo(-v, factor)
	}
	return float64(int64(v*factor+0.5)) / factor
}
