package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size is a rim diameter / tire width / profile combination.
type Size struct {
	Rim     int     `json:"rim"`     // inches
	Width   float64 `json:"width"`   // mm
	Profile float64 `json:"profile"` // % of width
}

// TotalDiameter returns the overall rolling diameter in mm for a rim diameter
// in inches, a width in mm and a profile in percent.
func TotalDiameter(rim int, width, profile float64) float64 {
	rimMM := float64(rim) * InchToMM
	sidewall := width * (profile / 100)
	return rimMM + 2*sidewall
}

// TotalDiameter returns the overall rolling diameter of the size in mm.
func (s Size) TotalDiameter() float64 {
	return TotalDiameter(s.Rim, s.Width, s.Profile)
}

// Sidewall returns the sidewall height in mm.
func (s Size) Sidewall() float64 {
	return s.Width * (s.Profile / 100)
}

// Key returns the canonical label, e.g. "225/45 R17".
func (s Size) Key() string {
	return SizeKey(s.Rim, s.Width, s.Profile)
}

// SizeKey formats a canonical "W/V RR" label.
func SizeKey(rim int, width, profile float64) string {
	return formatNumber(width) + "/" + formatNumber(profile) + " R" + strconv.Itoa(rim)
}

// ParseSizeKey parses labels such as "225/45 R17", "225/45R17" or "225/45 r17".
func ParseSizeKey(s string) (Input, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	slash := strings.Index(s, "/")
	r := strings.LastIndex(s, "R")
	if slash <= 0 || r <= slash {
		return Input{}, fmt.Errorf("%w: %q", ErrInvalidSizeKey, s)
	}

	width, err := strconv.ParseFloat(strings.TrimSpace(s[:slash]), 64)
	if err != nil {
		return Input{}, fmt.Errorf("%w: bad width in %q", ErrInvalidSizeKey, s)
	}
	profile, err := strconv.ParseFloat(strings.TrimSpace(s[slash+1:r]), 64)
	if err != nil {
		return Input{}, fmt.Errorf("%w: bad profile in %q", ErrInvalidSizeKey, s)
	}
	rim, err := strconv.ParseFloat(strings.TrimSpace(s[r+1:]), 64)
	if err != nil {
		return Input{}, fmt.Errorf("%w: bad rim in %q", ErrInvalidSizeKey, s)
	}
	if rim != math.Trunc(rim) {
		return Input{}, ErrRimNotInteger
	}

	return Input{Rim: int(rim), Width: width, Profile: profile}, nil
}

// formatNumber renders a float in its shortest form ("225", "22.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
