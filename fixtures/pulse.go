package fixtures

import (
	"math"
	"math/rand"
)

const (
	unitZero  = 0.0
	unitOne   = 1.0
	triDouble = 2.0
	triCenter = 1.0
)

// PulseOptions controls Pulse's waveform shape. Zero-value PulseOptions
// is not usable directly: use DefaultPulseOptions as a starting point.
type PulseOptions struct {
	Amplitude  float64 // amplitude > 0
	Frequency  float64 // base frequency in cycles/sample, > 0
	Duty       float64 // rectangular duty cycle in [0,1]; ignored if Triangular
	Triangular bool    // false = rectangular, true = triangular envelope
	NoiseSigma float64 // Gaussian noise sigma >= 0; 0 disables noise
	Trend      float64 // linear trend increment per sample
	Seed       int64   // deterministic RNG seed for the noise term
}

// DefaultPulseOptions returns stable defaults: amplitude 1, base frequency
// 0.125 (period 8), rectangular duty 0.5, no noise, no trend.
func DefaultPulseOptions(seed int64) PulseOptions {
	return PulseOptions{
		Amplitude: 1.0,
		Frequency: 0.125,
		Duty:      0.5,
		Seed:      seed,
	}
}

// Pulse returns a length-n rectangular or triangular waveform, optionally
// with linear trend and additive Gaussian noise superimposed. Returns nil
// if n < 1 or opts is invalid (non-positive amplitude/frequency, sigma <
// 0, or duty outside [0,1]).
//
// Complexity: O(n) time, O(n) space.
func Pulse(n int, opts PulseOptions) []float64 {
	if n < 1 {
		return nil
	}
	if opts.Amplitude <= 0 || opts.Frequency <= 0 || opts.NoiseSigma < 0 || opts.Duty < 0 || opts.Duty > 1 {
		return nil
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		frac := math.Mod(float64(i)*opts.Frequency, unitOne)

		var base float64
		if opts.Triangular {
			tri := unitOne - math.Abs(triDouble*frac-triCenter)
			base = opts.Amplitude * tri
		} else if frac < opts.Duty {
			base = opts.Amplitude
		} else {
			base = unitZero
		}

		base += opts.Trend * float64(i)
		if opts.NoiseSigma > 0 {
			base += opts.NoiseSigma * rng.NormFloat64()
		}
		out[i] = base
	}
	return out
}

// WhiteNoise returns a length-n sequence of i.i.d. samples drawn from
// N(0, sigma^2), deterministic for a fixed seed. Returns nil if n < 1 or
// sigma < 0.
//
// Complexity: O(n) time, O(n) space.
func WhiteNoise(n int, seed int64, sigma float64) []float64 {
	if n < 1 || sigma < 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = sigma * rng.NormFloat64()
	}
	return out
}
