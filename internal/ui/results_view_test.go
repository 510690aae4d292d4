package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vladmu/tire-calculator/internal/model"
)

func TestOptionCardTitle(t *testing.T) {
	o := model.Option{Width: 235, Rim: 18}
	assert.Equal(t, "Option W+10 (235 mm)", optionCardTitle(o, 225, false))
	assert.Equal(t, "Option W+0 (225 mm)", optionCardTitle(model.Option{Width: 225}, 225, false))
	assert.Equal(t, "Option W-20 (205 mm)", optionCardTitle(model.Option{Width: 205}, 225, false))
	assert.Equal(t, "Best alternative", optionCardTitle(o, 225, true))
}

func TestOptionCardLines(t *testing.T) {
	needed := 37.234
	o := model.Option{
		Width: 205, Rim: 18, Profile: 35, Diameter: 600.7,
		Delta: -5.84, DeltaPercent: -0.874, ProfileNeeded: &needed,
	}
	assert.Equal(t, []string{
		"Narrower: 20 mm",
		"Rim (R): 18 in",
		"Profile: 35% (exact 37.23%)",
		"Diameter: 600.7 mm",
		"Delta: -5.8 mm (-0.87%)",
	}, optionCardLines(o, 225))

	o.ProfileNeeded = nil
	o.Width = 225
	lines := optionCardLines(o, 225)
	assert.Equal(t, "Same width: 0 mm", lines[0])
	assert.Equal(t, "Profile: 35%", lines[2])
}

func TestCurrentSizeLines(t *testing.T) {
	res := model.Results{InitialSizeKey: "225/45 R17", Diameter: 634.3}
	assert.Equal(t, []string{
		"Diameter: 634.3 mm",
		"Width (W): 225 mm",
		"Profile (V): 45%",
	}, currentSizeLines(res))
}

func TestBoundsText(t *testing.T) {
	s := NewCalculatorState()
	assert.Equal(t, "R12: W 135 to 205 mm, V 60 to 90%", boundsText(s))

	s.SetR("25")
	assert.Equal(t, "R25: W 245 to 355 mm, V 20 to 35%", boundsText(s))
}
