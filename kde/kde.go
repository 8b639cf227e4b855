// Package kde fits univariate Gaussian kernel density estimates.
//
// A fitted Estimate places one Gaussian kernel on every sample point and
// averages them, with the kernel standard deviation (the bandwidth) chosen
// by a pluggable Rule. The package follows the common convention of
// expressing rules as scaling factors applied to the sample standard
// deviation, so Silverman's and Scott's rules of thumb, fixed factors, and
// custom callables all share one interface.
//
// # Basic Usage
//
//	est, err := kde.Fit(sample, kde.Silverman)
//	if err != nil {
//	    // sample cannot support a density fit (see ErrSingularSample)
//	}
//	logdens := est.LogDensityAt(points)
//
// # Failure Semantics
//
// Fit never degrades silently: samples with no spread (empty, a single
// point, all values equal, non-finite values) fail with a wrapped
// errs.ErrSingularSample so callers can fall back explicitly. This mirrors
// the behavior of covariance-based estimators that reject singular input.
//
// # Thread Safety
//
// Estimates are immutable after Fit returns and safe for concurrent use.
// Evaluating the density allocates only from an internal scratch pool.
package kde

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ahmet-humainr/scedar/errs"
	"github.com/ahmet-humainr/scedar/internal/pool"
)

// Estimate is a fitted univariate Gaussian kernel density estimate.
//
// The estimated density at t is the average of Gaussian kernels centered
// on the sample points:
//
//	density(t) = (1/n) Σ N(t; x_i, h²)   with h = factor · stddev
type Estimate struct {
	xs     []float64
	stddev float64
	iqr    float64
	factor float64
	logN   float64
}

// Fit fits a Gaussian kernel density estimate to xs using the given
// bandwidth rule. A nil rule selects Silverman.
//
// The kernel standard deviation is factor · stddev with the sample standard
// deviation using n-1 degrees of freedom. The estimate keeps its own copy
// of xs; the input is not modified or retained.
//
// Parameters:
//   - xs: Sample points
//   - rule: Bandwidth selection rule, or nil for Silverman
//
// Returns:
//   - *Estimate: The fitted estimate
//   - error: Wrapped errs.ErrSingularSample when the sample is empty, has
//     fewer than two points, has zero or non-finite spread, or the rule
//     produced a factor that is not positive and finite
func Fit(xs []float64, rule Rule) (*Estimate, error) {
	n := len(xs)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty sample", errs.ErrSingularSample)
	}
	if rule == nil {
		rule = Silverman
	}

	e := &Estimate{
		xs:   slices.Clone(xs),
		logN: math.Log(float64(n)),
	}

	// NaN for n < 2 or non-finite values, zero for constant samples.
	e.stddev = stat.StdDev(e.xs, nil)
	if !isPositiveFinite(e.stddev) {
		return nil, fmt.Errorf("%w: standard deviation %v of %d points", errs.ErrSingularSample, e.stddev, n)
	}

	sorted := slices.Clone(e.xs)
	slices.Sort(sorted)
	e.iqr = stat.Quantile(0.75, stat.Empirical, sorted, nil) - stat.Quantile(0.25, stat.Empirical, sorted, nil)

	factor := rule.Factor(e)
	if !isPositiveFinite(factor) {
		return nil, fmt.Errorf("%w: bandwidth factor %v", errs.ErrSingularSample, factor)
	}
	e.factor = factor

	return e, nil
}

// N returns the number of sample points.
func (e *Estimate) N() int {
	return len(e.xs)
}

// StdDev returns the sample standard deviation (n-1 degrees of freedom).
func (e *Estimate) StdDev() float64 {
	return e.stddev
}

// IQR returns the interquartile range of the sample. Default rules ignore
// it; robust custom rules typically use min(stddev, iqr/1.349).
func (e *Estimate) IQR() float64 {
	return e.iqr
}

// Factor returns the bandwidth scaling factor chosen by the rule.
func (e *Estimate) Factor() float64 {
	return e.factor
}

// Bandwidth returns the kernel standard deviation, factor · stddev.
func (e *Estimate) Bandwidth() float64 {
	return e.factor * e.stddev
}

// Sample returns a copy of the fitted sample points.
func (e *Estimate) Sample() []float64 {
	return slices.Clone(e.xs)
}

// LogDensityAt evaluates the log of the estimated density at each point.
//
// The mixture is accumulated in log space with LogSumExp, so low density
// regions do not underflow before the sum. Cost is O(len(points) · n).
//
// Returns:
//   - []float64: Log densities, one per point, owned by the caller
func (e *Estimate) LogDensityAt(points []float64) []float64 {
	out := make([]float64, len(points))
	if len(points) == 0 {
		return out
	}

	lps, cleanup := pool.GetFloat64Slice(len(e.xs))
	defer cleanup()

	kernel := distuv.Normal{Mu: 0, Sigma: e.Bandwidth()}
	for i, t := range points {
		for j, x := range e.xs {
			lps[j] = kernel.LogProb(t - x)
		}
		out[i] = floats.LogSumExp(lps) - e.logN
	}

	return out
}

// DensityAt evaluates the estimated probability density at each point.
func (e *Estimate) DensityAt(points []float64) []float64 {
	out := e.LogDensityAt(points)
	for i, ld := range out {
		out[i] = math.Exp(ld)
	}

	return out
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
