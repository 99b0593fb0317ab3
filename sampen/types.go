package sampen

import (
	"errors"
	"io"
	"time"

	"github.com/go-sampen/sampen/sampling"
)

// Sentinel errors for option validation and signal bounds.
var (
	// ErrShortInput indicates the signal has too few samples for the
	// requested embedding dimension.
	ErrShortInput = errors.New("sampen: signal too short for requested dimension")

	// ErrInvalidDimension indicates a non-positive or out-of-range
	// embedding dimension (m must be in [1, 10]).
	ErrInvalidDimension = errors.New("sampen: embedding dimension must be in [1, 10]")

	// ErrInvalidThreshold indicates a negative similarity threshold.
	ErrInvalidThreshold = errors.New("sampen: threshold r must be non-negative")

	// ErrInvalidEngine indicates an Engine value outside the supported set.
	ErrInvalidEngine = errors.New("sampen: unknown engine")

	// ErrInvalidSampling indicates an invalid (sample size, sample count)
	// pair was supplied to ComputeSampling.
	ErrInvalidSampling = errors.New("sampen: invalid sampling configuration")

	// ErrInvalidWorkerCount indicates a non-positive worker count was
	// passed to ComputeSamplingConcurrent.
	ErrInvalidWorkerCount = errors.New("sampen: worker count must be positive")
)

// Engine selects which exact algorithm Compute drives.
type Engine int

const (
	// EngineSlidingKD is the default: two aligned passes over
	// kdtree.CountingTree2K, the 2^K-ary counting tree, one at dimension
	// m+1 for A and one at dimension m for B.
	EngineSlidingKD Engine = iota
	// EngineRangeKD computes (A, B) jointly in a single amortized
	// sliding-window pass over rangekdtree.RangeTree2K, a distinct tree
	// that fuses the last axis into the same traversal. Kept alongside
	// EngineSlidingKD so the two independent index structures cross-check
	// each other.
	EngineRangeKD
	// EngineSimpleKD computes (A, B) via two kdtree.CountSimple passes
	// driven directly over value-space templates (no rank-space reduction,
	// no windowing) — the parity baseline for kdtree itself.
	EngineSimpleKD
	// EngineDirect computes (A, B) via the Θ(N²m) brute-force baseline in
	// package direct. Intended for tests and small inputs only.
	EngineDirect
)

// Options configures a SampEn computation.
//
//	M           - embedding dimension, must be in [1, 10].
//	R           - similarity threshold (Chebyshev radius), must be >= 0.
//	Engine      - which exact algorithm Compute drives. Ignored by
//	              ComputeSampling, which always drives the range-tree
//	              path of sliding.ComputeSampledAB.
//	SampleSize  - N0, desired per-sample index-set size (ComputeSampling only).
//	SampleCount - N1, number of samples to draw (ComputeSampling only).
//	Scheme      - index-sampling scheme (ComputeSampling only).
//	Seed        - deterministic RNG seed; 0 uses a fixed default seed.
//	Random      - if true, seed is instead derived from the wall clock.
//	Reference   - if non-nil, ComputeSampling/ComputeSamplingConcurrent report
//	              MSE against this precise reference entropy (e.g. an exact
//	              Compute result).
//	Trace       - optional writer for per-phase diagnostic logging; nil disables it.
type Options struct {
	M           int
	R           float64
	Engine      Engine
	SampleSize  int
	SampleCount int
	Scheme      sampling.Scheme
	Seed        int64
	Random      bool
	Reference   *float64
	Trace       io.Writer
}

// DefaultOptions returns Options pre-populated with safe defaults: m=2,
// r=0 (callers typically scale r by signal standard deviation before
// calling Compute), EngineSlidingKD, deterministic seed 0.
func DefaultOptions() Options {
	return Options{
		M:           2,
		R:           0,
		Engine:      EngineSlidingKD,
		SampleSize:  0,
		SampleCount: 0,
		Seed:        0,
	}
}

// Validate checks that Options holds a valid combination for Compute.
func (o *Options) Validate() error {
	if o.M < 1 || o.M > 10 {
		return ErrInvalidDimension
	}
	if o.R < 0 {
		return ErrInvalidThreshold
	}
	if o.Engine < EngineSlidingKD || o.Engine > EngineDirect {
		return ErrInvalidEngine
	}
	return nil
}

// ValidateSampling additionally checks the sampling-specific fields, for
// ComputeSampling/ComputeSamplingConcurrent.
func (o *Options) ValidateSampling() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.SampleSize <= 0 || o.SampleCount <= 0 {
		return ErrInvalidSampling
	}
	return nil
}

// Result is the outcome of an exact SampEn computation.
//
//	Entropy    - -ln(A/B), or +Inf if A==0 || B==0.
//	A, B       - raw matched-pair counts.
//	N          - signal length.
//	Degenerate - true when Entropy is +Inf (A or B is zero).
//	Elapsed    - wall-clock time spent inside Compute.
type Result struct {
	Entropy    float64
	A, B       int64
	N          int
	Degenerate bool
	Elapsed    time.Duration
}

// Sample is one draw's (A, B, entropy) tally within a SamplingResult.
type Sample struct {
	A, B    int64
	Entropy float64
}

// SamplingResult is the outcome of a sampling-mode SampEn estimation.
//
//	Samples  - per-draw (A, B, entropy) tallies, length SampleCount.
//	Mean     - mean of Samples[*].Entropy, excluding degenerate (+Inf) draws.
//	Variance - Bessel-corrected (n-1) sample variance of the same set.
//	MSE      - mean squared error against Reference, if Reference was supplied.
//	Elapsed  - wall-clock time spent inside ComputeSampling.
type SamplingResult struct {
	Samples  []Sample
	Mean     float64
	Variance float64
	MSE      float64
	Elapsed  time.Duration
}
