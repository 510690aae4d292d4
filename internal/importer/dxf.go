package importer

import (
	"fmt"
	"strings"

	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// ImportDXF reads the size labels back from a wheel drawing such as the one
// written by export.ExportDXF. Every TEXT entity that parses as a size
// becomes an entry; other text and geometry are ignored.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	seen := map[string]bool{}
	circles := 0
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Text:
			in, ok := sizeFromText(e.Value)
			if !ok || seen[in.Key()] {
				continue
			}
			if err := in.Validate(); err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped label %q: %v", e.Value, err))
				continue
			}
			seen[in.Key()] = true
			result.Sizes = append(result.Sizes, SizeEntry{Label: in.Key(), Input: in})
		case *entity.Circle:
			circles++
		}
	}

	if len(result.Sizes) == 0 {
		result.Errors = append(result.Errors, "No size labels found in DXF file")
		return result
	}
	if circles != 2*len(result.Sizes) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Found %d circles for %d sizes; drawing may have been edited", circles, len(result.Sizes)))
	}
	return result
}

// sizeFromText extracts a size from labels like "MAIN 235/40 R18" or
// "225/45 R17 (643.3 mm)": the first token holding a "/" plus the token
// after it.
func sizeFromText(s string) (model.Input, bool) {
	fields := strings.Fields(s)
	for i, f := range fields {
		if !strings.Contains(f, "/") {
			continue
		}
		candidate := f
		if i+1 < len(fields) {
			candidate += " " + fields[i+1]
		}
		if in, err := model.ParseSizeKey(candidate); err == nil {
			return in, true
		}
		if in, err := model.ParseSizeKey(f); err == nil {
			return in, true
		}
	}
	return model.Input{}, false
}
