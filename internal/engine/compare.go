package engine

import (
	"github.com/vladmu/tire-calculator/internal/model"
)

// Comparison holds the calculation results and summary statistics for one
// size in a batch.
type Comparison struct {
	Label          string
	Input          model.Input
	Results        model.Results
	MainCount      int
	BestDelta      float64 // |delta| of the best main option, 0 when there is none
	HasAlternative bool
}

// CompareSizes runs the calculation for each input and returns one
// Comparison per input, in input order.
func CompareSizes(inputs []model.Input) []Comparison {
	out := make([]Comparison, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, Compare(in.Key(), in))
	}
	return out
}

// Compare runs the calculation for a single labelled input.
func Compare(label string, in model.Input) Comparison {
	res := CalculateNewSizes(in)
	c := Comparison{
		Label:          label,
		Input:          in,
		Results:        res,
		MainCount:      len(res.Main),
		HasAlternative: res.BestAlternative != nil,
	}
	if res.BestMain != nil {
		c.BestDelta = res.BestMain.AbsDelta()
	}
	return c
}

// Recommended returns the option to show first for a comparison: the best
// main option, else the alternative. ok is false when there is neither.
func (c Comparison) Recommended() (model.Option, bool) {
	if c.Results.BestMain != nil {
		return *c.Results.BestMain, true
	}
	if c.Results.BestAlternative != nil {
		return *c.Results.BestAlternative, true
	}
	return model.Option{}, false
}
