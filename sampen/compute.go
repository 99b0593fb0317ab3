package sampen

import (
	"fmt"
	"time"

	"github.com/go-sampen/sampen/direct"
	"github.com/go-sampen/sampen/kdpoint"
	"github.com/go-sampen/sampen/kdtree"
	"github.com/go-sampen/sampen/sliding"
	"github.com/go-sampen/sampen/template"
)

// Compute runs an exact SampEn computation over data under opts, using
// the engine opts.Engine selects. All four engines are guaranteed to
// produce identical (A, B) for the same (data, m, r); EngineSlidingKD is
// the production default, the others exist for cross-checking and
// diagnostics.
func Compute[T kdpoint.Numeric](data []T, opts Options) (Result, error) {
	start := time.Now()
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if len(data) <= opts.M+1 {
		return Result{}, ErrShortInput
	}

	r := T(opts.R)
	var a, b int64
	var err error

	switch opts.Engine {
	case EngineSlidingKD:
		a, b, err = sliding.ComputeABKD(data, opts.M, r)
	case EngineRangeKD:
		a, b, err = sliding.ComputeAB(data, opts.M, r)
	case EngineSimpleKD:
		a, b, err = computeSimpleKD(data, opts.M, r)
	case EngineDirect:
		a, b = direct.ComputeAB(data, opts.M, r)
	default:
		err = ErrInvalidEngine
	}
	if err != nil {
		return Result{}, err
	}

	traceCompute(opts, a, b)

	entropy := Entropy(a, b)
	return Result{
		Entropy:    entropy,
		A:          a,
		B:          b,
		N:          len(data),
		Degenerate: a == 0 || b == 0,
		Elapsed:    time.Since(start),
	}, nil
}

// computeSimpleKD is the EngineSimpleKD baseline: kdtree.CountSimple run
// directly over value-space templates (no rank-space reduction, no
// windowing), once at dimension m (aligned to the same N-m index range
// ComputeAB uses, by dropping the one m-length template with no
// (m+1)-length counterpart) and once at dimension m+1.
func computeSimpleKD[T kdpoint.Numeric](data []T, m int, r T) (a, b int64, err error) {
	templatesM, err := template.Extract(data, m, 1)
	if err != nil {
		return 0, 0, err
	}
	aligned := templatesM[:len(templatesM)-1]

	templatesM1, err := template.Extract(data, m+1, 1)
	if err != nil {
		return 0, 0, err
	}

	b, err = kdtree.CountSimple(aligned, r)
	if err != nil {
		return 0, 0, err
	}
	a, err = kdtree.CountSimple(templatesM1, r)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// traceCompute writes a one-line diagnostic summary to opts.Trace, if set.
func traceCompute(opts Options, a, b int64) {
	if opts.Trace == nil {
		return
	}
	fmt.Fprintf(opts.Trace, "sampen: engine=%d m=%d r=%v a=%d b=%d\n", opts.Engine, opts.M, opts.R, a, b)
}
