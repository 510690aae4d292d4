package ui

import "errors"

var (
	// ErrNotNumeric is returned when a size field does not hold a number.
	ErrNotNumeric = errors.New("please enter valid numbers for R, W and V")
	// ErrNoRecommendation is returned when the search finds neither a main
	// option nor an alternative within the 2% diameter tolerance.
	ErrNoRecommendation = errors.New("no size matches all limits, including the 2% diameter tolerance")
)
