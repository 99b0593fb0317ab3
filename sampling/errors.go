package sampling

import "errors"

// Sentinel errors for index-set generation.
var (
	// ErrInvalidSampleSize indicates a non-positive requested sample size.
	ErrInvalidSampleSize = errors.New("sampling: sample size must be positive")

	// ErrInvalidPopulation indicates a non-positive population size, or one
	// smaller than the requested sample size under a without-replacement
	// scheme.
	ErrInvalidPopulation = errors.New("sampling: population size invalid for requested sample size")

	// ErrUnknownScheme indicates a Scheme value outside the supported set.
	ErrUnknownScheme = errors.New("sampling: unknown scheme")
)
