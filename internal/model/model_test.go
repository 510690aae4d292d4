package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalDiameter(t *testing.T) {
	// 17 * 25.4 + 2 * (235 * 0.45) = 431.8 + 211.5
	assert.InDelta(t, 643.3, TotalDiameter(17, 235, 45), 1e-9)
	assert.InDelta(t, 12*InchToMM, TotalDiameter(12, 135, 0), 1e-9)
}

func TestTotalDiameterMonotonic(t *testing.T) {
	base := TotalDiameter(17, 225, 45)
	if TotalDiameter(18, 225, 45) <= base {
		t.Error("diameter should grow with rim")
	}
	if TotalDiameter(17, 235, 45) <= base {
		t.Error("diameter should grow with width")
	}
	if TotalDiameter(17, 225, 50) <= base {
		t.Error("diameter should grow with profile")
	}
}

func TestSizeHelpers(t *testing.T) {
	s := Size{Rim: 17, Width: 235, Profile: 45}
	assert.Equal(t, "235/45 R17", s.Key())
	assert.InDelta(t, 105.75, s.Sidewall(), 1e-9)
	assert.InDelta(t, 643.3, s.TotalDiameter(), 1e-9)
}

func TestSizeKeyFractional(t *testing.T) {
	assert.Equal(t, "225/52.5 R20", SizeKey(20, 225, 52.5))
}

func TestParseSizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want Input
	}{
		{"225/45 R17", Input{Rim: 17, Width: 225, Profile: 45}},
		{"225/45R17", Input{Rim: 17, Width: 225, Profile: 45}},
		{" 195/65 r15 ", Input{Rim: 15, Width: 195, Profile: 65}},
	}
	for _, tt := range tests {
		got, err := ParseSizeKey(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseSizeKeyErrors(t *testing.T) {
	for _, in := range []string{"", "225 R17", "abc/45 R17", "225/xx R17", "225/45 R", "225/45"} {
		_, err := ParseSizeKey(in)
		assert.ErrorIs(t, err, ErrInvalidSizeKey, in)
	}

	_, err := ParseSizeKey("225/45 R16.5")
	assert.True(t, errors.Is(err, ErrRimNotInteger))
}

func TestParseSizeKeyRoundTrip(t *testing.T) {
	in := Input{Rim: 19, Width: 245, Profile: 35}
	got, err := ParseSizeKey(in.Key())
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestInputValidate(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"valid", Input{Rim: 17, Width: 225, Profile: 45}, nil},
		{"outside table limits still valid", Input{Rim: 12, Width: 300, Profile: 95}, nil},
		{"rim too small", Input{Rim: 11, Width: 200, Profile: 50}, ErrRimOutOfRange},
		{"rim too large", Input{Rim: 26, Width: 200, Profile: 50}, ErrRimOutOfRange},
		{"zero width", Input{Rim: 17, Width: 0, Profile: 45}, ErrNonPositive},
		{"profile below floor", Input{Rim: 17, Width: 235, Profile: 15}, ErrProfileTooLow},
		{"width not multiple of 5", Input{Rim: 17, Width: 226, Profile: 45}, ErrNotStepMultiple},
		{"profile not multiple of 5", Input{Rim: 17, Width: 225, Profile: 47}, ErrNotStepMultiple},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOptionHelpers(t *testing.T) {
	o := Option{Width: 235, Rim: 18, Profile: 40, Delta: -3.5, DeltaPercent: -0.6}
	assert.InDelta(t, 3.5, o.AbsDelta(), 1e-9)
	assert.True(t, o.WithinTolerance())
	assert.Equal(t, 10.0, o.WidthChange(225))
	assert.Equal(t, "Wider", o.WidthChangeLabel(225))
	assert.Equal(t, "Narrower", o.WidthChangeLabel(245))
	assert.Equal(t, "Same width", o.WidthChangeLabel(235))

	o.DeltaPercent = 2.5
	assert.False(t, o.WithinTolerance())
}

func TestResultsHelpers(t *testing.T) {
	var empty Results
	assert.False(t, empty.HasRecommendation())
	assert.Equal(t, 17, empty.MaxMainRim(17))

	best := Option{Size: "235/40 R18", Rim: 18}
	r := Results{
		Main:     []Option{{Size: "225/45 R17", Rim: 17}, best, {Size: "245/35 R19", Rim: 19}},
		BestMain: &best,
	}
	assert.True(t, r.HasRecommendation())
	assert.Equal(t, 19, r.MaxMainRim(17))
	assert.Equal(t, 20, r.MaxMainRim(20))
	assert.True(t, r.IsBestMain(best))
	assert.False(t, r.IsBestMain(r.Main[0]))

	alt := Results{BestAlternative: &Option{Rim: 20}}
	assert.True(t, alt.HasRecommendation())
}
