package sliding

import "errors"

// Sentinel errors for the window controller.
var (
	// ErrShortInput indicates the signal has too few samples to form a
	// template of the requested length.
	ErrShortInput = errors.New("sliding: signal too short for requested dimension")

	// ErrInvalidDimension indicates a non-positive template length.
	ErrInvalidDimension = errors.New("sliding: dimension must be positive")
)
