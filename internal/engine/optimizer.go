package engine

import (
	"math"

	"github.com/vladmu/tire-calculator/internal/model"
)

// BestProfileFor finds the profile at width w and rim r that brings the total
// diameter closest to baseDiameter. Only the two multiples of ProfileStep
// around the exact required profile are tried. In relaxed mode, when neither
// fits the tolerance, the rounded required profile is clamped into the rim's
// profile range and returned regardless of drift.
//
// The winning option carries the exact required profile in ProfileNeeded.
func BestProfileFor(w, baseDiameter float64, r int, relaxed bool) (model.Option, bool) {
	sidewall := (baseDiameter - float64(r)*model.InchToMM) / 2
	if sidewall <= 0 {
		return model.Option{}, false
	}
	needed := sidewall / w * 100

	vA := math.Max(model.MinProfileGlobal, math.Floor(needed/model.ProfileStep)*model.ProfileStep)
	vB := math.Max(model.MinProfileGlobal, math.Ceil(needed/model.ProfileStep)*model.ProfileStep)

	enforce := !relaxed
	best, found := evaluateValid(model.Size{Rim: r, Width: w, Profile: vA}, baseDiameter, enforce)
	if vB != vA {
		// vA wins ties on |delta|.
		if o, ok := evaluateValid(model.Size{Rim: r, Width: w, Profile: vB}, baseDiameter, enforce); ok {
			if !found || o.AbsDelta() < best.AbsDelta() {
				best, found = o, true
			}
		}
	}

	if !found && relaxed {
		best, found = clampedProfile(w, baseDiameter, r, needed)
	}
	if !found {
		return model.Option{}, false
	}

	best.ProfileNeeded = &needed
	return best, true
}

// clampedProfile is the last-resort candidate: the required profile rounded
// to the nearest step and forced into the rim's profile bounds.
func clampedProfile(w, baseDiameter float64, r int, needed float64) (model.Option, bool) {
	min, max, ok := model.LimitsFor(r)
	if !ok || w < min.Width || w > max.Width {
		return model.Option{}, false
	}
	v := math.Round(needed/model.ProfileStep) * model.ProfileStep
	v = math.Min(math.Max(v, min.Profile), max.Profile)
	return Evaluate(model.Size{Rim: r, Width: w, Profile: v}, baseDiameter, false)
}

// BestForWidth scans rims from MaxR down to baseRim+1 (or only MaxR when
// baseRim is already MaxR) and returns the option found on the largest rim.
func BestForWidth(w, baseDiameter float64, baseRim int, relaxed bool) (model.Option, bool) {
	floor := baseRim + 1
	if baseRim >= model.MaxR {
		floor = model.MaxR
	}
	for r := model.MaxR; r >= floor; r-- {
		if o, ok := BestProfileFor(w, baseDiameter, r, relaxed); ok {
			return o, true
		}
	}
	return model.Option{}, false
}
