package engine

import (
	"math"

	"github.com/vladmu/tire-calculator/internal/model"
)

// Evaluate builds the option record for s against baseDiameter. With
// enforceTolerance set, sizes drifting more than MaxDeltaPercent are
// rejected (ok == false). Evaluate does not check the limits table.
func Evaluate(s model.Size, baseDiameter float64, enforceTolerance bool) (model.Option, bool) {
	d := s.TotalDiameter()
	delta := d - baseDiameter
	deltaPercent := delta / baseDiameter * 100

	if enforceTolerance && math.Abs(deltaPercent) > model.MaxDeltaPercent {
		return model.Option{}, false
	}

	return model.Option{
		Width:        s.Width,
		Rim:          s.Rim,
		Profile:      s.Profile,
		Diameter:     d,
		Delta:        delta,
		DeltaPercent: deltaPercent,
		Size:         s.Key(),
	}, true
}

// evaluateValid runs IsValid then Evaluate.
func evaluateValid(s model.Size, baseDiameter float64, enforceTolerance bool) (model.Option, bool) {
	if !IsValid(s.Rim, s.Width, s.Profile) {
		return model.Option{}, false
	}
	return Evaluate(s, baseDiameter, enforceTolerance)
}
