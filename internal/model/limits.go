package model

import "fmt"

// Sizing constants shared by the engine and every caller that needs UI bounds.
const (
	InchToMM            = 25.4 // millimeters per inch
	MinR                = 12   // smallest rim diameter (inches)
	MaxR                = 25   // largest rim diameter (inches)
	RimCount            = MaxR - MinR + 1
	MinProfileGlobal    = 20.0  // profile floor (%) regardless of rim
	MaxDeltaPercent     = 2.0   // allowed total diameter drift (%)
	WidthStep           = 10.0  // mm between candidate widths
	ProfileStep         = 5.0   // % between candidate profiles
	MaxWidthSearchDelta = 40.0  // widest offset from the original width (mm)
	MinSearchWidth      = 100.0 // absolute lower bound for scanned widths (mm)
)

// LimitPair holds a width (mm) and profile (%) bound for one rim diameter.
type LimitPair struct {
	Width   float64 `json:"width"`
	Profile float64 `json:"profile"`
}

// MinLimits holds the minimum permissible width and profile per rim diameter,
// indexed by rim - MinR.
var MinLimits = [RimCount]LimitPair{
	12 - MinR: {Width: 135, Profile: 60},
	13 - MinR: {Width: 145, Profile: 55},
	14 - MinR: {Width: 145, Profile: 50},
	15 - MinR: {Width: 155, Profile: 35},
	16 - MinR: {Width: 165, Profile: 35},
	17 - MinR: {Width: 185, Profile: 35},
	18 - MinR: {Width: 205, Profile: 30},
	19 - MinR: {Width: 225, Profile: 25},
	20 - MinR: {Width: 225, Profile: 25},
	21 - MinR: {Width: 235, Profile: 25},
	22 - MinR: {Width: 235, Profile: 25},
	23 - MinR: {Width: 235, Profile: 25},
	24 - MinR: {Width: 245, Profile: 20},
	25 - MinR: {Width: 245, Profile: 20},
}

// MaxLimits holds the maximum permissible width and profile per rim diameter,
// indexed by rim - MinR.
var MaxLimits = [RimCount]LimitPair{
	12 - MinR: {Width: 205, Profile: 90},
	13 - MinR: {Width: 225, Profile: 90},
	14 - MinR: {Width: 265, Profile: 90},
	15 - MinR: {Width: 315, Profile: 90},
	16 - MinR: {Width: 315, Profile: 85},
	17 - MinR: {Width: 335, Profile: 75},
	18 - MinR: {Width: 345, Profile: 70},
	19 - MinR: {Width: 355, Profile: 65},
	20 - MinR: {Width: 355, Profile: 65},
	21 - MinR: {Width: 355, Profile: 55},
	22 - MinR: {Width: 355, Profile: 55},
	23 - MinR: {Width: 355, Profile: 40},
	24 - MinR: {Width: 355, Profile: 40},
	25 - MinR: {Width: 355, Profile: 35},
}

func init() {
	if err := CheckLimits(); err != nil {
		panic(err)
	}
}

// RimInRange reports whether r is a rim diameter covered by the limits tables.
func RimInRange(r int) bool {
	return r >= MinR && r <= MaxR
}

// LimitsFor returns the minimum and maximum bounds for rim diameter r.
// ok is false when r is outside [MinR, MaxR].
func LimitsFor(r int) (min, max LimitPair, ok bool) {
	if !RimInRange(r) {
		return LimitPair{}, LimitPair{}, false
	}
	return MinLimits[r-MinR], MaxLimits[r-MinR], true
}

// CheckLimits verifies that every rim diameter in range has a complete,
// consistent entry in both tables.
func CheckLimits() error {
	for i := 0; i < RimCount; i++ {
		r := MinR + i
		lo, hi := MinLimits[i], MaxLimits[i]
		if lo.Width <= 0 || lo.Profile <= 0 {
			return fmt.Errorf("limits: missing minimum entry for R%d", r)
		}
		if hi.Width <= 0 || hi.Profile <= 0 {
			return fmt.Errorf("limits: missing maximum entry for R%d", r)
		}
		if lo.Width > hi.Width || lo.Profile > hi.Profile {
			return fmt.Errorf("limits: minimum exceeds maximum for R%d", r)
		}
	}
	return nil
}

// LimitRow is one display row of the limits tables.
type LimitRow struct {
	Rim int       `json:"rim"`
	Min LimitPair `json:"min"`
	Max LimitPair `json:"max"`
}

// LimitRows returns the limits tables as rows ordered by rim diameter.
func LimitRows() []LimitRow {
	rows := make([]LimitRow, 0, RimCount)
	for i := 0; i < RimCount; i++ {
		rows = append(rows, LimitRow{Rim: MinR + i, Min: MinLimits[i], Max: MaxLimits[i]})
	}
	return rows
}
