package model

import "errors"

var (
	// ErrRimNotInteger indicates a rim diameter with a fractional part.
	ErrRimNotInteger = errors.New("rim diameter (R) must be a whole number")
	// ErrRimOutOfRange indicates a rim diameter outside [MinR, MaxR].
	ErrRimOutOfRange = errors.New("rim diameter (R) is out of range")
	// ErrProfileTooLow indicates a profile below MinProfileGlobal.
	ErrProfileTooLow = errors.New("profile (V) must be at least 20%")
	// ErrNotStepMultiple indicates a width or profile that is not a multiple of 5.
	ErrNotStepMultiple = errors.New("width (W) and profile (V) must be multiples of 5")
	// ErrNonPositive indicates a zero or negative width.
	ErrNonPositive = errors.New("width (W) must be positive")
	// ErrInvalidSizeKey indicates a size label that does not match "W/V RR".
	ErrInvalidSizeKey = errors.New("size must look like 225/45 R17")
)
