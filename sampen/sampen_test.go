package sampen_test

import (
	"math"
	"testing"

	"github.com/go-sampen/sampen/direct"
	"github.com/go-sampen/sampen/fixtures"
	"github.com/go-sampen/sampen/sampen"
	"github.com/go-sampen/sampen/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opts(m int, r float64, engine sampen.Engine) sampen.Options {
	o := sampen.DefaultOptions()
	o.M = m
	o.R = r
	o.Engine = engine
	return o
}

// TestCompute_IncreasingSequence cross-checks the accelerated default
// engine against the direct O(N²m) baseline on a strictly increasing
// signal, where the embedding gap alone is enough to separate every
// pair of distinct templates.
func TestCompute_IncreasingSequence(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	wantA, wantB := direct.ComputeAB(data, 2, 0.5)

	res, err := sampen.Compute(data, opts(2, 0.5, sampen.EngineSlidingKD))
	require.NoError(t, err)
	assert.Equal(t, wantA, res.A)
	assert.Equal(t, wantB, res.B)
	assert.InDelta(t, sampen.Entropy(wantA, wantB), res.Entropy, 1e-9)
}

// TestCompute_ConstantSignal: every template matches every other, giving
// the closed-form combinatorial count C(N-m, 2) for both A and B, and
// zero entropy.
func TestCompute_ConstantSignal(t *testing.T) {
	data := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	res, err := sampen.Compute(data, opts(2, 0.0, sampen.EngineSlidingKD))
	require.NoError(t, err)

	n := int64(len(data) - 2)
	want := n * (n - 1) / 2
	assert.Equal(t, want, res.A)
	assert.Equal(t, want, res.B)
	assert.InDelta(t, 0.0, res.Entropy, 1e-9)
}

// TestCompute_SingleSpikeSignal cross-checks a signal with one isolated
// outlier sample against the direct baseline.
func TestCompute_SingleSpikeSignal(t *testing.T) {
	data := []float64{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}
	wantA, wantB := direct.ComputeAB(data, 2, 0.5)

	res, err := sampen.Compute(data, opts(2, 0.5, sampen.EngineSlidingKD))
	require.NoError(t, err)
	assert.Equal(t, wantA, res.A)
	assert.Equal(t, wantB, res.B)
}

// TestCompute_AlternatingSignal: a strict period-2 pattern gives equal
// A and B (every B-match extends to an A-match), so entropy is zero.
func TestCompute_AlternatingSignal(t *testing.T) {
	data := []float64{1, 2, 1, 2, 1, 2, 1, 2, 1, 2}
	wantA, wantB := direct.ComputeAB(data, 2, 0.5)

	res, err := sampen.Compute(data, opts(2, 0.5, sampen.EngineSlidingKD))
	require.NoError(t, err)
	assert.Equal(t, wantA, res.A)
	assert.Equal(t, wantB, res.B)
	assert.Equal(t, res.A, res.B)
	assert.InDelta(t, 0.0, res.Entropy, 1e-9)
}

// TestCompute_AllEnginesAgree verifies every exact engine produces
// identical (A, B) for the same input.
func TestCompute_AllEnginesAgree(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	engines := []sampen.Engine{
		sampen.EngineSlidingKD, sampen.EngineRangeKD,
		sampen.EngineSimpleKD, sampen.EngineDirect,
	}

	var wantA, wantB int64
	for i, eng := range engines {
		res, err := sampen.Compute(data, opts(2, 1.0, eng))
		require.NoError(t, err)
		if i == 0 {
			wantA, wantB = res.A, res.B
		} else {
			assert.Equal(t, wantA, res.A, "engine %v disagrees on A", eng)
			assert.Equal(t, wantB, res.B, "engine %v disagrees on B", eng)
		}
	}
}

// TestComputeSampling_AgreesWithExactWithinTolerance checks that a
// sampling-mode estimate on white noise lands within a few standard
// errors of the exact computation.
func TestComputeSampling_AgreesWithExactWithinTolerance(t *testing.T) {
	data := fixtures.WhiteNoise(1024, 17, 1.0)
	sigma := stddev(data)
	r := 0.2 * sigma

	exact, err := sampen.Compute(data, opts(2, r, sampen.EngineSlidingKD))
	require.NoError(t, err)
	require.False(t, exact.Degenerate)

	o := opts(2, r, sampen.EngineSlidingKD)
	o.SampleSize = 256
	o.SampleCount = 50
	o.Scheme = sampling.SWRUniform
	o.Seed = 99

	result, err := sampen.ComputeSampling(data, o)
	require.NoError(t, err)

	stderr := math.Sqrt(result.Variance / float64(o.SampleCount))
	assert.InDelta(t, exact.Entropy, result.Mean, 3*stderr+1e-6)
}

func TestComputeSamplingConcurrent_MatchesSequential(t *testing.T) {
	data := fixtures.WhiteNoise(512, 5, 1.0)
	sigma := stddev(data)

	o := opts(2, 0.2*sigma, sampen.EngineSlidingKD)
	o.SampleSize = 64
	o.SampleCount = 20
	o.Scheme = sampling.Sobol
	o.Seed = 123

	seq, err := sampen.ComputeSampling(data, o)
	require.NoError(t, err)
	conc, err := sampen.ComputeSamplingConcurrent(data, o, 4)
	require.NoError(t, err)

	require.Len(t, conc.Samples, len(seq.Samples))
	for i := range seq.Samples {
		assert.Equal(t, seq.Samples[i].A, conc.Samples[i].A, "sample %d A mismatch", i)
		assert.Equal(t, seq.Samples[i].B, conc.Samples[i].B, "sample %d B mismatch", i)
	}
}

func TestEntropy_ConstantShiftInvariance(t *testing.T) {
	base := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3}
	shifted := make([]float64, len(base))
	for i, v := range base {
		shifted[i] = v + 100
	}

	r1, err := sampen.Compute(base, opts(2, 1.0, sampen.EngineSlidingKD))
	require.NoError(t, err)
	r2, err := sampen.Compute(shifted, opts(2, 1.0, sampen.EngineSlidingKD))
	require.NoError(t, err)

	assert.Equal(t, r1.A, r2.A)
	assert.Equal(t, r1.B, r2.B)
}

func TestEntropy_ReversalInvariance(t *testing.T) {
	base := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3}
	reversed := make([]float64, len(base))
	for i, v := range base {
		reversed[len(base)-1-i] = v
	}

	r1, err := sampen.Compute(base, opts(2, 1.0, sampen.EngineSlidingKD))
	require.NoError(t, err)
	r2, err := sampen.Compute(reversed, opts(2, 1.0, sampen.EngineSlidingKD))
	require.NoError(t, err)

	assert.Equal(t, r1.Entropy, r2.Entropy)
}

func TestCompute_DegenerateWhenNoMatches(t *testing.T) {
	data := []float64{0, 1000, 0, 2000, 0, 3000, 0, 4000}
	res, err := sampen.Compute(data, opts(2, 0.01, sampen.EngineSlidingKD))
	require.NoError(t, err)
	assert.True(t, res.Degenerate)
	assert.True(t, math.IsInf(res.Entropy, 1))
}

func TestCompute_InvalidOptions(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}

	_, err := sampen.Compute(data, opts(0, 1, sampen.EngineSlidingKD))
	assert.ErrorIs(t, err, sampen.ErrInvalidDimension)

	_, err = sampen.Compute(data, opts(2, -1, sampen.EngineSlidingKD))
	assert.ErrorIs(t, err, sampen.ErrInvalidThreshold)
}

func TestCompute_ShortInput(t *testing.T) {
	_, err := sampen.Compute([]float64{1, 2, 3}, opts(2, 1, sampen.EngineSlidingKD))
	assert.ErrorIs(t, err, sampen.ErrShortInput)
}

func stddev(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v
	}
	mu := sum / float64(len(data))
	var ss float64
	for _, v := range data {
		d := v - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(data)-1))
}
