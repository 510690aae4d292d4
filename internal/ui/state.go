package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/vladmu/tire-calculator/internal/engine"
	"github.com/vladmu/tire-calculator/internal/model"
)

// CalculatorState holds the raw text of the R/W/V fields, the last error and
// the last results. It has no UI toolkit dependency; the window binds its
// entries to it and calls Calculate.
type CalculatorState struct {
	R, W, V string

	Err     error
	Results *model.Results
}

// NewCalculatorState returns a state pre-filled with the smallest rim and its
// minimum width and profile.
func NewCalculatorState() *CalculatorState {
	s := &CalculatorState{}
	s.Reset()
	return s
}

// Reset restores the rim-12 defaults and clears error and results.
func (s *CalculatorState) Reset() {
	s.R = strconv.Itoa(model.MinR)
	s.W = formatValue(minWidth(model.MinR))
	s.V = formatValue(minProfile(model.MinR))
	s.Err = nil
	s.Results = nil
}

// Load replaces the fields with in, e.g. a garage entry or the configured
// default. Width and profile are kept verbatim.
func (s *CalculatorState) Load(in model.Input) {
	s.R = strconv.Itoa(in.Rim)
	s.W = formatValue(in.Width)
	s.V = formatValue(in.Profile)
	s.Err = nil
	s.Results = nil
}

// CurrentR is the rim used for field bounds: the parsed R clamped into
// range, or MinR when R is not a number.
func (s *CalculatorState) CurrentR() int {
	r, ok := parseInt(s.R)
	if !ok {
		return model.MinR
	}
	return clampRim(r)
}

// MinWidth returns the minimum width for the current rim.
func (s *CalculatorState) MinWidth() float64 { return minWidth(s.CurrentR()) }

// MaxWidth returns the maximum width for the current rim.
func (s *CalculatorState) MaxWidth() float64 {
	_, max, _ := model.LimitsFor(s.CurrentR())
	return max.Width
}

// MinProfile returns the minimum profile for the current rim, never below
// the global floor.
func (s *CalculatorState) MinProfile() float64 { return minProfile(s.CurrentR()) }

// MaxProfile returns the maximum profile for the current rim.
func (s *CalculatorState) MaxProfile() float64 {
	_, max, _ := model.LimitsFor(s.CurrentR())
	return max.Profile
}

// SetR parses val as a rim, clamps it into range and resets W and V to that
// rim's minimums. Text that is not a number is stored as typed.
func (s *CalculatorState) SetR(val string) {
	r, ok := parseInt(val)
	if !ok {
		s.R = val
		return
	}
	r = clampRim(r)
	s.R = strconv.Itoa(r)
	s.W = formatValue(minWidth(r))
	s.V = formatValue(minProfile(r))
}

// SetRRaw stores val without normalisation.
func (s *CalculatorState) SetRRaw(val string) { s.R = val }

// SetWRaw stores val without normalisation.
func (s *CalculatorState) SetWRaw(val string) { s.W = val }

// SetVRaw stores val without normalisation.
func (s *CalculatorState) SetVRaw(val string) { s.V = val }

// SetW stores val and commits it.
func (s *CalculatorState) SetW(val string) {
	s.SetWRaw(val)
	s.CommitW()
}

// SetV stores val and commits it.
func (s *CalculatorState) SetV(val string) {
	s.SetVRaw(val)
	s.CommitV()
}

// CommitW floors W to the width step and clamps it to the current rim's
// bounds. Empty or non-numeric text becomes the minimum width.
func (s *CalculatorState) CommitW() {
	w, ok := parseFloat(s.W)
	if !ok {
		s.W = formatValue(s.MinWidth())
		return
	}
	w = floorToStep(w, model.WidthStep)
	s.W = formatValue(clamp(w, s.MinWidth(), s.MaxWidth()))
}

// CommitV floors V to the profile step and clamps it to the current rim's
// bounds. Empty or non-numeric text becomes the minimum profile.
func (s *CalculatorState) CommitV() {
	v, ok := parseFloat(s.V)
	if !ok {
		s.V = formatValue(s.MinProfile())
		return
	}
	v = floorToStep(v, model.ProfileStep)
	s.V = formatValue(clamp(v, s.MinProfile(), s.MaxProfile()))
}

// IncrementR moves to the next rim, resetting W and V.
func (s *CalculatorState) IncrementR() { s.SetR(strconv.Itoa(s.CurrentR() + 1)) }

// DecrementR moves to the previous rim, resetting W and V.
func (s *CalculatorState) DecrementR() { s.SetR(strconv.Itoa(s.CurrentR() - 1)) }

// IncrementW adds one width step, capped at the maximum width.
func (s *CalculatorState) IncrementW() { s.stepW(model.WidthStep) }

// DecrementW subtracts one width step, floored at the minimum width.
func (s *CalculatorState) DecrementW() { s.stepW(-model.WidthStep) }

// IncrementV adds one profile step, capped at the maximum profile.
func (s *CalculatorState) IncrementV() { s.stepV(model.ProfileStep) }

// DecrementV subtracts one profile step, floored at the minimum profile.
func (s *CalculatorState) DecrementV() { s.stepV(-model.ProfileStep) }

func (s *CalculatorState) stepW(delta float64) {
	w, ok := parseFloat(s.W)
	if !ok {
		w = s.MinWidth()
	}
	s.W = formatValue(clamp(w+delta, s.MinWidth(), s.MaxWidth()))
}

func (s *CalculatorState) stepV(delta float64) {
	v, ok := parseFloat(s.V)
	if !ok {
		v = s.MinProfile()
	}
	s.V = formatValue(clamp(v+delta, s.MinProfile(), s.MaxProfile()))
}

// IsReady reports whether all three fields are non-empty.
func (s *CalculatorState) IsReady() bool {
	return s.R != "" && s.W != "" && s.V != ""
}

// Parsed returns the numeric values of the fields. ok is false if any field
// is not a number.
func (s *CalculatorState) Parsed() (r, w, v float64, ok bool) {
	var okR, okW, okV bool
	r, okR = parseFloat(s.R)
	w, okW = parseFloat(s.W)
	v, okV = parseFloat(s.V)
	return r, w, v, okR && okW && okV
}

// Input validates the fields and converts them to an engine input.
func (s *CalculatorState) Input() (model.Input, error) {
	r, w, v, ok := s.Parsed()
	if !ok {
		return model.Input{}, ErrNotNumeric
	}
	if r != math.Trunc(r) {
		return model.Input{}, model.ErrRimNotInteger
	}
	if r < model.MinR || r > model.MaxR {
		return model.Input{}, model.ErrRimOutOfRange
	}
	in := model.Input{Rim: int(r), Width: w, Profile: v}
	if err := in.Validate(); err != nil {
		return model.Input{}, err
	}
	return in, nil
}

// Validate returns the first problem with the fields, or nil.
func (s *CalculatorState) Validate() error {
	_, err := s.Input()
	return err
}

// Calculate clears the previous outcome, validates the fields and runs the
// search. Err is set and returned on failure; Results is set on success.
func (s *CalculatorState) Calculate() error {
	return s.calculate(engine.CalculateNewSizes)
}

func (s *CalculatorState) calculate(search func(model.Input) model.Results) error {
	s.Err = nil
	s.Results = nil

	in, err := s.Input()
	if err != nil {
		s.Err = err
		return err
	}

	res := search(in)
	if !res.HasRecommendation() {
		s.Err = ErrNoRecommendation
		return s.Err
	}
	s.Results = &res
	return nil
}

func minWidth(r int) float64 {
	min, _, _ := model.LimitsFor(r)
	return min.Width
}

func minProfile(r int) float64 {
	min, _, _ := model.LimitsFor(r)
	return math.Max(model.MinProfileGlobal, min.Profile)
}

func clampRim(r int) int {
	if r < model.MinR {
		return model.MinR
	}
	if r > model.MaxR {
		return model.MaxR
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func floorToStep(v, step float64) float64 {
	return math.Floor(v/step) * step
}

// parseInt accepts integers and decimals, truncating the latter ("17.5" -> 17).
func parseInt(s string) (int, bool) {
	f, ok := parseFloat(s)
	if !ok {
		return 0, false
	}
	// Out-of-range values are pinned before conversion so huge input cannot
	// overflow int.
	switch {
	case f > model.MaxR:
		return model.MaxR + 1, true
	case f < model.MinR:
		return model.MinR - 1, true
	}
	return int(math.Trunc(f)), true
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
