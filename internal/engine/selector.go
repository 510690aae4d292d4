package engine

import (
	"github.com/vladmu/tire-calculator/internal/model"
)

// CalculateNewSizes searches replacement sizes for in.
//
// Main options come from the original width and the next two width steps;
// each is searched strictly first and relaxed if nothing fits. The best
// alternative is looked for on the remaining widths within
// MaxWidthSearchDelta and only counts when it reaches a rim larger than
// every main option. Empty results are a normal outcome.
func CalculateNewSizes(in model.Input) model.Results {
	base := in.Size().TotalDiameter()
	res := model.Results{
		InitialSizeKey: in.Key(),
		Diameter:       base,
		Main:           []model.Option{},
	}

	for _, w := range mainWidths(in.Width) {
		o, ok := BestForWidth(w, base, in.Rim, false)
		if !ok {
			o, ok = BestForWidth(w, base, in.Rim, true)
		}
		if !ok {
			continue
		}
		res.Main = append(res.Main, o)
		if res.BestMain == nil || o.AbsDelta() < res.BestMain.AbsDelta() {
			best := o
			res.BestMain = &best
		}
	}

	maxMainRim := res.MaxMainRim(in.Rim)
	var alt *model.Option
	for _, w := range altWidths(in.Width) {
		o, ok := BestForWidth(w, base, in.Rim, false)
		if !ok || o.Rim <= maxMainRim {
			continue
		}
		picked := PickBetterAlternative(alt, o)
		alt = &picked
	}
	res.BestAlternative = alt

	return res
}

// PickBetterAlternative returns candidate when it sits on a larger rim than
// current, or on the same rim with a strictly smaller |Delta|. A nil current
// always loses.
func PickBetterAlternative(current *model.Option, candidate model.Option) model.Option {
	if current == nil {
		return candidate
	}
	if candidate.Rim > current.Rim {
		return candidate
	}
	if candidate.Rim == current.Rim && candidate.AbsDelta() < current.AbsDelta() {
		return candidate
	}
	return *current
}

func mainWidths(w float64) []float64 {
	return []float64{w, w + model.WidthStep, w + 2*model.WidthStep}
}

// altWidths lists the upward widths beyond the main range first, then the
// downward widths, stopping at MinSearchWidth.
func altWidths(w float64) []float64 {
	var widths []float64
	for x := w + 3*model.WidthStep; x <= w+model.MaxWidthSearchDelta; x += model.WidthStep {
		widths = append(widths, x)
	}
	for x := w - model.WidthStep; x >= w-model.MaxWidthSearchDelta && x >= model.MinSearchWidth; x -= model.WidthStep {
		widths = append(widths, x)
	}
	return widths
}
