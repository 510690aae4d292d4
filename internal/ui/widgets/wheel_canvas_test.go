package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladmu/tire-calculator/internal/model"
)

func sampleResults() model.Results {
	best := model.Option{Width: 225, Rim: 20, Profile: 35, Size: "225/35 R20", Delta: -2.5}
	return model.Results{
		InitialSizeKey: "205/70 R15",
		Diameter:       668,
		Main: []model.Option{
			{Width: 205, Rim: 18, Profile: 50, Size: "205/50 R18", Delta: -5.8},
			best,
		},
		BestMain:        &best,
		BestAlternative: &model.Option{Width: 235, Rim: 22, Profile: 25, Size: "235/25 R22", Delta: 8.3},
	}
}

func TestWheelsFor(t *testing.T) {
	list := WheelsFor(sampleResults())
	require.Len(t, list, 4)

	assert.Equal(t, "Current", list[0].Label)
	assert.Equal(t, colorOriginal, list[0].Color)
	assert.Equal(t, "-5.8 mm", list[1].Label)
	assert.Equal(t, colorMain, list[1].Color)
	assert.Equal(t, "Best -2.5 mm", list[2].Label)
	assert.Equal(t, colorBest, list[2].Color)
	assert.Equal(t, "Alt +8.3 mm", list[3].Label)
	assert.Equal(t, colorAlternative, list[3].Color)
}

func TestWheelsFor_BadKey(t *testing.T) {
	res := sampleResults()
	res.InitialSizeKey = ""
	list := WheelsFor(res)
	assert.Len(t, list, 3, "original is skipped when its key does not parse")
}

func TestWheelScale(t *testing.T) {
	assert.Zero(t, wheelScale(nil, 600, 300))

	list := WheelsFor(sampleResults())
	scale := wheelScale(list, 600, 300)
	require.Greater(t, scale, float32(0))

	var sum float32
	for _, w := range list {
		d := float32(w.Size.TotalDiameter()) * scale
		assert.LessOrEqual(t, d, float32(300)-labelHeight-wheelGap+0.01)
		sum += d
	}
	assert.LessOrEqual(t, sum+wheelGap*float32(len(list)+1), float32(600.01))
}

func TestWheelScale_MinimumSize(t *testing.T) {
	list := WheelsFor(sampleResults())
	scale := wheelScale(list, 50, 50)
	var tallest float32
	for _, w := range list {
		if d := float32(w.Size.TotalDiameter()); d > tallest {
			tallest = d
		}
	}
	assert.InDelta(t, minWheelSize, tallest*scale, 0.01)
}
