package sliding_test

import (
	"testing"

	"github.com/go-sampen/sampen/sliding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chebyshev(x, y []float64) float64 {
	var max float64
	for i := range x {
		d := x[i] - y[i]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

// bruteB counts matched pairs among every m-length template of seq,
// independent of the A-counting alignment ComputeAB uses.
func bruteB(seq []float64, m int, r float64) int64 {
	count := len(seq) - m + 1
	var total int64
	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			if chebyshev(seq[i:i+m], seq[j:j+m]) <= r {
				total++
			}
		}
	}
	return total
}

// bruteAB counts matched (m+1)-length pairs (a) and matched m-length
// prefixes restricted to the same aligned index range (b), the textbook
// Sample Entropy definition.
func bruteAB(seq []float64, m int, r float64) (a, b int64) {
	numB := len(seq) - m
	for i := 0; i < numB; i++ {
		for j := i + 1; j < numB; j++ {
			if chebyshev(seq[i:i+m], seq[j:j+m]) <= r {
				b++
				if chebyshev(seq[i:i+m+1], seq[j:j+m+1]) <= r {
					a++
				}
			}
		}
	}
	return a, b
}

func TestComputeB_MatchesBruteForce(t *testing.T) {
	seq := []float64{1, 2, 1, 3, 1, 2, 4, 1, 2, 1, 3, 2}
	m := 2
	r := 0.5

	got, err := sliding.ComputeB(seq, m, r)
	require.NoError(t, err)
	assert.Equal(t, bruteB(seq, m, r), got)
}

func TestComputeB_WiderThreshold(t *testing.T) {
	seq := []float64{5, 1, 4, 2, 8, 3, 9, 0, 6, 7, 5, 1, 4, 2, 8}
	m := 3
	r := 1.5

	got, err := sliding.ComputeB(seq, m, r)
	require.NoError(t, err)
	assert.Equal(t, bruteB(seq, m, r), got)
}

func TestComputeB_NoMatches(t *testing.T) {
	seq := []float64{0, 100, 0, 200, 0, 300, 0, 400}
	got, err := sliding.ComputeB(seq, 2, 0.1)
	require.NoError(t, err)
	assert.Equal(t, bruteB(seq, 2, 0.1), got)
}

func TestComputeB_InvalidDimension(t *testing.T) {
	_, err := sliding.ComputeB([]float64{1, 2, 3}, 0, 1)
	assert.ErrorIs(t, err, sliding.ErrInvalidDimension)
}

func TestComputeB_ShortInput(t *testing.T) {
	_, err := sliding.ComputeB([]float64{1, 2}, 2, 1)
	assert.ErrorIs(t, err, sliding.ErrShortInput)
}

func TestComputeAB_MatchesBruteForce(t *testing.T) {
	seq := []float64{1, 2, 1, 3, 1, 2, 4, 1, 2, 1, 3, 2}
	m := 2
	r := 0.5

	a, b, err := sliding.ComputeAB(seq, m, r)
	require.NoError(t, err)
	wantA, wantB := bruteAB(seq, m, r)
	assert.Equal(t, wantA, a)
	assert.Equal(t, wantB, b)
}

func TestComputeAB_WiderThreshold(t *testing.T) {
	seq := []float64{5, 1, 4, 2, 8, 3, 9, 0, 6, 7, 5, 1, 4, 2, 8}
	m := 2
	r := 2.0

	a, b, err := sliding.ComputeAB(seq, m, r)
	require.NoError(t, err)
	wantA, wantB := bruteAB(seq, m, r)
	assert.Equal(t, wantA, a)
	assert.Equal(t, wantB, b)
}

func TestComputeAB_AAlwaysAtMostB(t *testing.T) {
	seq := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3}
	a, b, err := sliding.ComputeAB(seq, 2, 1.0)
	require.NoError(t, err)
	assert.LessOrEqual(t, a, b)
}

func TestComputeAB_InvalidDimension(t *testing.T) {
	_, _, err := sliding.ComputeAB([]float64{1, 2, 3}, 0, 1)
	assert.ErrorIs(t, err, sliding.ErrInvalidDimension)
}

func TestComputeAB_ShortInput(t *testing.T) {
	_, _, err := sliding.ComputeAB([]float64{1, 2, 3}, 2, 1)
	assert.ErrorIs(t, err, sliding.ErrShortInput)
}

func TestComputeB_ConstantSignalMatchesEverything(t *testing.T) {
	seq := make([]float64, 10)
	for i := range seq {
		seq[i] = 7
	}
	got, err := sliding.ComputeB(seq, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, bruteB(seq, 2, 0), got)
	assert.Greater(t, got, int64(0))
}

func TestComputeABKD_MatchesBruteForce(t *testing.T) {
	seq := []float64{1, 2, 1, 3, 1, 2, 4, 1, 2, 1, 3, 2}
	m := 2
	r := 0.5

	a, b, err := sliding.ComputeABKD(seq, m, r)
	require.NoError(t, err)
	wantA, wantB := bruteAB(seq, m, r)
	assert.Equal(t, wantA, a)
	assert.Equal(t, wantB, b)
}

func TestComputeABKD_AgreesWithComputeAB(t *testing.T) {
	seq := []float64{5, 1, 4, 2, 8, 3, 9, 0, 6, 7, 5, 1, 4, 2, 8}
	m := 3
	r := 1.5

	kdA, kdB, err := sliding.ComputeABKD(seq, m, r)
	require.NoError(t, err)
	rkdA, rkdB, err := sliding.ComputeAB(seq, m, r)
	require.NoError(t, err)
	assert.Equal(t, rkdA, kdA)
	assert.Equal(t, rkdB, kdB)
}

func TestComputeABKD_InvalidDimension(t *testing.T) {
	_, _, err := sliding.ComputeABKD([]float64{1, 2, 3}, 0, 1)
	assert.ErrorIs(t, err, sliding.ErrInvalidDimension)
}

func TestComputeABKD_ShortInput(t *testing.T) {
	_, _, err := sliding.ComputeABKD([]float64{1, 2, 3}, 2, 1)
	assert.ErrorIs(t, err, sliding.ErrShortInput)
}

// bruteSampledAB restricts bruteAB-style counting to a caller-supplied
// ascending index set instead of the full [0, N-m) range.
func bruteSampledAB(seq []float64, indices []int, m int, r float64) (a, b int64) {
	for pi := 0; pi < len(indices); pi++ {
		for pj := pi + 1; pj < len(indices); pj++ {
			i, j := indices[pi], indices[pj]
			if chebyshev(seq[i:i+m], seq[j:j+m]) <= r {
				b++
				if chebyshev(seq[i:i+m+1], seq[j:j+m+1]) <= r {
					a++
				}
			}
		}
	}
	return a, b
}

func TestComputeSampledAB_MatchesBruteForce(t *testing.T) {
	seq := []float64{5, 1, 4, 2, 8, 3, 9, 0, 6, 7, 5, 1, 4, 2, 8, 3, 9}
	indices := []int{0, 2, 5, 6, 9, 11}
	m := 2
	r := 2.0

	a, b, err := sliding.ComputeSampledAB(seq, indices, m, r)
	require.NoError(t, err)
	wantA, wantB := bruteSampledAB(seq, indices, m, r)
	assert.Equal(t, wantA, a)
	assert.Equal(t, wantB, b)
}

func TestComputeSampledAB_FullRangeAgreesWithComputeAB(t *testing.T) {
	seq := []float64{1, 2, 1, 3, 1, 2, 4, 1, 2, 1, 3, 2}
	m := 2
	r := 0.5

	numB := len(seq) - m
	indices := make([]int, numB)
	for i := range indices {
		indices[i] = i
	}

	sampledA, sampledB, err := sliding.ComputeSampledAB(seq, indices, m, r)
	require.NoError(t, err)
	wantA, wantB, err := sliding.ComputeAB(seq, m, r)
	require.NoError(t, err)
	assert.Equal(t, wantA, sampledA)
	assert.Equal(t, wantB, sampledB)
}

func TestComputeSampledAB_EmptyIndices(t *testing.T) {
	a, b, err := sliding.ComputeSampledAB([]float64{1, 2, 3, 4}, nil, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), a)
	assert.Equal(t, int64(0), b)
}

func TestComputeSampledAB_SingleIndex(t *testing.T) {
	a, b, err := sliding.ComputeSampledAB([]float64{1, 2, 3, 4}, []int{0}, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), a)
	assert.Equal(t, int64(0), b)
}

func TestComputeSampledAB_InvalidDimension(t *testing.T) {
	_, _, err := sliding.ComputeSampledAB([]float64{1, 2, 3}, []int{0}, 0, 1)
	assert.ErrorIs(t, err, sliding.ErrInvalidDimension)
}
