// Package importer reads lists of tire sizes from CSV, Excel and DXF files.
// CSV delimiters are detected automatically and columns are mapped from
// case-insensitive header names.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vladmu/tire-calculator/internal/engine"
	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/xuri/excelize/v2"
)

// SizeEntry is one imported, validated size.
type SizeEntry struct {
	Label string
	Input model.Input
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Sizes    []SizeEntry
	Errors   []string
	Warnings []string
}

// Inputs returns the imported sizes without labels.
func (r ImportResult) Inputs() []model.Input {
	out := make([]model.Input, len(r.Sizes))
	for i, s := range r.Sizes {
		out[i] = s.Input
	}
	return out
}

// ColumnMapping maps column roles to their indices; -1 means absent.
// A row is read either from Size ("225/45 R17") or from Rim, Width and
// Profile.
type ColumnMapping struct {
	Label   int
	Size    int
	Rim     int
	Width   int
	Profile int
}

func (m ColumnMapping) hasSplitColumns() bool {
	return m.Rim >= 0 && m.Width >= 0 && m.Profile >= 0
}

// headerAliases maps column roles to their accepted header names (lowercase).
var headerAliases = map[string][]string{
	"label":   {"label", "name", "vehicle", "description", "desc"},
	"size":    {"size", "tire", "tyre", "tire size", "tyre size"},
	"rim":     {"rim", "r", "rim diameter", "diameter", "wheel", "inch", "inches"},
	"width":   {"width", "w", "tread width", "section width"},
	"profile": {"profile", "v", "aspect", "aspect ratio", "series", "ratio"},
}

var delimiterNames = map[rune]string{',': "comma", ';': "semicolon", '\t': "tab", '|': "pipe"}

// DetectCSVDelimiter picks the delimiter that splits the most rows into the
// same number of columns as the first row. Comma wins when nothing splits.
func DetectCSVDelimiter(data []byte) rune {
	best, bestScore := ',', 0
	for _, delim := range []rune{',', ';', '\t', '|'} {
		records, err := readCSV(bytes.NewReader(data), delim)
		if err != nil || len(records) == 0 || len(records[0]) < 2 {
			continue
		}
		cols := len(records[0])
		consistent := 0
		for _, row := range records {
			if len(row) == cols {
				consistent++
			}
		}
		if score := consistent*10 + cols; score > bestScore {
			best, bestScore = delim, score
		}
	}
	return best
}

func readCSV(r io.Reader, delim rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// DetectColumns maps a header row to column roles. ok is false when no cell
// matches a known header; the mapping is then all -1.
func DetectColumns(row []string) (ColumnMapping, bool) {
	idx := map[string]int{}
	for i, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			if _, seen := idx[role]; seen {
				continue
			}
			for _, alias := range aliases {
				if name == alias {
					idx[role] = i
					break
				}
			}
		}
	}

	col := func(role string) int {
		if i, ok := idx[role]; ok {
			return i
		}
		return -1
	}
	return ColumnMapping{
		Label:   col("label"),
		Size:    col("size"),
		Rim:     col("rim"),
		Width:   col("width"),
		Profile: col("profile"),
	}, len(idx) > 0
}

// positionalMapping guesses the layout of a headerless row:
// "size", "label,size" or "label,rim,width,profile".
func positionalMapping(row []string) (ColumnMapping, bool) {
	m := ColumnMapping{Label: -1, Size: -1, Rim: -1, Width: -1, Profile: -1}
	switch {
	case len(row) == 1:
		m.Size = 0
	case len(row) >= 2 && looksLikeSize(row[1]):
		m.Label, m.Size = 0, 1
	case looksLikeSize(row[0]):
		m.Size = 0
		if len(row) >= 2 {
			m.Label = 1
		}
	case len(row) >= 4:
		m.Label, m.Rim, m.Width, m.Profile = 0, 1, 2, 3
	default:
		return m, false
	}
	return m, true
}

func looksLikeSize(s string) bool {
	_, err := model.ParseSizeKey(s)
	return err == nil
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow reads one size. It returns an error message for rejected rows and
// an optional warning for accepted ones.
func parseRow(row []string, m ColumnMapping, rowLabel string) (SizeEntry, string, string) {
	var in model.Input

	if sizeStr := getCell(row, m.Size); sizeStr != "" {
		parsed, err := model.ParseSizeKey(sizeStr)
		if err != nil {
			return SizeEntry{}, fmt.Sprintf("%s: %v", rowLabel, err), ""
		}
		in = parsed
	} else if m.hasSplitColumns() {
		rim, err := parseNumber(row, m.Rim, "rim", rowLabel)
		if err != "" {
			return SizeEntry{}, err, ""
		}
		width, err := parseNumber(row, m.Width, "width", rowLabel)
		if err != "" {
			return SizeEntry{}, err, ""
		}
		profile, err := parseNumber(row, m.Profile, "profile", rowLabel)
		if err != "" {
			return SizeEntry{}, err, ""
		}
		if rim != float64(int(rim)) {
			return SizeEntry{}, fmt.Sprintf("%s: %v", rowLabel, model.ErrRimNotInteger), ""
		}
		in = model.Input{Rim: int(rim), Width: width, Profile: profile}
	} else {
		return SizeEntry{}, fmt.Sprintf("%s: Missing size value", rowLabel), ""
	}

	if err := in.Validate(); err != nil {
		return SizeEntry{}, fmt.Sprintf("%s: %v", rowLabel, err), ""
	}

	label := getCell(row, m.Label)
	if label == "" {
		label = in.Key()
	}

	var warning string
	if !engine.IsValid(in.Rim, in.Width, in.Profile) {
		warning = fmt.Sprintf("%s: %s is outside the limits table for R%d", rowLabel, in.Key(), in.Rim)
	}
	return SizeEntry{Label: label, Input: in}, "", warning
}

func parseNumber(row []string, idx int, name, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, s)
	}
	return v, ""
}

// ImportCSV imports sizes from a CSV file, detecting the delimiter.
func ImportCSV(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}

	var warnings []string
	delim := DetectCSVDelimiter(data)
	if delim != ',' {
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimiterNames[delim]))
	}

	records, err := readCSV(bytes.NewReader(data), delim)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports sizes from r using a known delimiter.
func ImportCSVFromReader(r io.Reader, delimiter rune) ImportResult {
	records, err := readCSV(r, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(records, "Line", nil)
}

// ImportExcel imports sizes from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open Excel file: %v", err)}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{Errors: []string{"Excel file has no sheets"}}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read Excel data: %v", err)}}
	}
	return importFromRows(rows, "Row", nil)
}

// ImportFile dispatches on the file extension.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xlsm"):
		return ImportExcel(path)
	case strings.HasSuffix(lower, ".dxf"):
		return ImportDXF(path)
	default:
		return ImportCSV(path)
	}
}

// importFromRows is the shared logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, warnings []string) ImportResult {
	result := ImportResult{Warnings: warnings}

	start := 0
	for start < len(rows) && isEmptyRow(rows[start]) {
		start++
	}
	if start == len(rows) {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[start])
	if hasHeader {
		if mapping.Size < 0 && !mapping.hasSplitColumns() {
			result.Errors = append(result.Errors,
				"Required columns not found in header: Size, or Rim, Width and Profile")
			return result
		}
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
		start++
	} else {
		var ok bool
		mapping, ok = positionalMapping(rows[start])
		if !ok {
			result.Errors = append(result.Errors, "Cannot recognise the column layout")
			return result
		}
	}

	seen := map[string]bool{}
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		entry, errMsg, warning := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		key := entry.Label + "|" + entry.Input.Key()
		if seen[key] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Duplicate %s skipped", rowLabel, entry.Input.Key()))
			continue
		}
		seen[key] = true
		result.Sizes = append(result.Sizes, entry)
	}

	if len(result.Sizes) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}
	return result
}
