package engine

import "github.com/vladmu/tire-calculator/internal/model"

// IsValid reports whether the size lies inside the limits table for its rim
// and above the global profile floor.
func IsValid(r int, w, v float64) bool {
	min, max, ok := model.LimitsFor(r)
	if !ok {
		return false
	}
	if v < model.MinProfileGlobal {
		return false
	}
	if w < min.Width || w > max.Width {
		return false
	}
	if v < min.Profile || v > max.Profile {
		return false
	}
	return true
}
