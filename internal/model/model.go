package model

import (
	"math"
)

// Input is the original, already-entered tire size.
type Input struct {
	Rim     int     `json:"rim"`     // inches
	Width   float64 `json:"width"`   // mm
	Profile float64 `json:"profile"` // %
}

// Size converts the input to a Size.
func (in Input) Size() Size {
	return Size{Rim: in.Rim, Width: in.Width, Profile: in.Profile}
}

// Key returns the canonical label of the input size.
func (in Input) Key() string {
	return SizeKey(in.Rim, in.Width, in.Profile)
}

// Validate checks that the input can be handed to the engine.
// Per-rim width and profile limits are not checked; any existing tire is a
// valid starting point.
func (in Input) Validate() error {
	if !RimInRange(in.Rim) {
		return ErrRimOutOfRange
	}
	if in.Width <= 0 {
		return ErrNonPositive
	}
	if in.Profile < MinProfileGlobal {
		return ErrProfileTooLow
	}
	if math.Mod(in.Width, ProfileStep) != 0 || math.Mod(in.Profile, ProfileStep) != 0 {
		return ErrNotStepMultiple
	}
	return nil
}

// Option is one candidate replacement size evaluated against a baseline diameter.
type Option struct {
	Width        float64 `json:"width"`
	Rim          int     `json:"rim"`
	Profile      float64 `json:"profile"`
	Diameter     float64 `json:"diameter"`      // total diameter of the candidate (mm)
	Delta        float64 `json:"delta"`         // Diameter - baseline (mm)
	DeltaPercent float64 `json:"delta_percent"` // Delta / baseline * 100
	Size         string  `json:"size"`          // "W/V RR"

	// ProfileNeeded is the exact profile that would give zero delta at this
	// width and rim. Set by the profile search, nil otherwise.
	ProfileNeeded *float64 `json:"profile_needed,omitempty"`
}

// AbsDelta returns |Delta|.
func (o Option) AbsDelta() float64 {
	return math.Abs(o.Delta)
}

// WithinTolerance reports whether |DeltaPercent| <= MaxDeltaPercent.
func (o Option) WithinTolerance() bool {
	return math.Abs(o.DeltaPercent) <= MaxDeltaPercent
}

// WidthChange returns the width difference to base in mm.
func (o Option) WidthChange(base float64) float64 {
	return o.Width - base
}

// WidthChangeLabel describes the width change relative to base.
func (o Option) WidthChangeLabel(base float64) string {
	switch d := o.WidthChange(base); {
	case d > 0:
		return "Wider"
	case d < 0:
		return "Narrower"
	default:
		return "Same width"
	}
}

// Results holds everything one calculation produces.
type Results struct {
	InitialSizeKey  string   `json:"initial_size"`
	Diameter        float64  `json:"diameter"` // total diameter of the original size (mm)
	Main            []Option `json:"main"`
	BestMain        *Option  `json:"best_main,omitempty"`
	BestAlternative *Option  `json:"best_alternative,omitempty"`
}

// HasRecommendation reports whether the calculation produced anything to show.
func (r Results) HasRecommendation() bool {
	return len(r.Main) > 0 || r.BestAlternative != nil
}

// MaxMainRim returns the largest rim among the main options, or floor if
// it is larger.
func (r Results) MaxMainRim(floor int) int {
	max := floor
	for _, o := range r.Main {
		if o.Rim > max {
			max = o.Rim
		}
	}
	return max
}

// IsBestMain reports whether o is the best main option.
func (r Results) IsBestMain(o Option) bool {
	return r.BestMain != nil && r.BestMain.Size == o.Size
}
