package ui

import (
	"fmt"
	"math"

	"github.com/vladmu/tire-calculator/internal/model"
)

// optionCardTitle is the heading of a result card, e.g. "Option W+10 (235 mm)".
func optionCardTitle(o model.Option, baseWidth float64, alternative bool) string {
	if alternative {
		return "Best alternative"
	}
	return fmt.Sprintf("Option W%+.0f (%.0f mm)", o.WidthChange(baseWidth), o.Width)
}

// optionCardLines returns the detail lines shown under a result card title.
func optionCardLines(o model.Option, baseWidth float64) []string {
	lines := []string{
		fmt.Sprintf("%s: %.0f mm", o.WidthChangeLabel(baseWidth), math.Abs(o.WidthChange(baseWidth))),
		fmt.Sprintf("Rim (R): %d in", o.Rim),
	}
	if o.ProfileNeeded != nil {
		lines = append(lines, fmt.Sprintf("Profile: %.0f%% (exact %.2f%%)", o.Profile, *o.ProfileNeeded))
	} else {
		lines = append(lines, fmt.Sprintf("Profile: %.0f%%", o.Profile))
	}
	lines = append(lines,
		fmt.Sprintf("Diameter: %.1f mm", o.Diameter),
		fmt.Sprintf("Delta: %.1f mm (%.2f%%)", o.Delta, o.DeltaPercent),
	)
	return lines
}

// currentSizeLines summarises the original size of a result.
func currentSizeLines(res model.Results) []string {
	lines := []string{fmt.Sprintf("Diameter: %.1f mm", res.Diameter)}
	if in, err := model.ParseSizeKey(res.InitialSizeKey); err == nil {
		lines = append(lines,
			fmt.Sprintf("Width (W): %s mm", formatValue(in.Width)),
			fmt.Sprintf("Profile (V): %s%%", formatValue(in.Profile)),
		)
	}
	return lines
}

// boundsText describes the valid width and profile ranges of the current rim.
func boundsText(s *CalculatorState) string {
	return fmt.Sprintf("R%d: W %s to %s mm, V %s to %s%%",
		s.CurrentR(),
		formatValue(s.MinWidth()), formatValue(s.MaxWidth()),
		formatValue(s.MinProfile()), formatValue(s.MaxProfile()))
}

const rulesText = "Finds the largest possible rim with the smallest diameter difference. " +
	"The total diameter may change by at most 2%. Profiles are at least 20% in steps of 5; " +
	"rims are whole inches up to 25.\n\n" +
	"Main options use widths W, W+10 and W+20 mm. The alternative (10 mm steps) is shown " +
	"when another width below W or above W+20 fits a larger rim.\n\n" +
	"Minimum and maximum width and profile limits apply to every rim diameter."
