package kde

import "math"

// Rule selects the bandwidth scaling factor for a fitted estimate.
//
// Factor is called once during Fit, after the sample, its standard
// deviation, and its interquartile range are resolved but before the factor
// itself; rules must only consult N, StdDev, IQR, and Sample. Fit rejects
// factors that are not positive and finite.
type Rule interface {
	Factor(e *Estimate) float64
}

// Rules of thumb for Gaussian kernels on univariate data. Both shrink the
// bandwidth as n^(-1/5); Silverman adds the 3/4 sample-size correction.
//
//   - Silverman: (3n/4)^(-1/5), the default
//   - Scott: n^(-1/5)
var (
	Silverman Rule = silvermanRule{}
	Scott     Rule = scottRule{}
)

type silvermanRule struct{}

func (silvermanRule) Factor(e *Estimate) float64 {
	return math.Pow(0.75*float64(e.N()), -0.2)
}

type scottRule struct{}

func (scottRule) Factor(e *Estimate) float64 {
	return math.Pow(float64(e.N()), -0.2)
}

// FixedFactor pins the bandwidth factor to a constant. The kernel
// bandwidth is still the factor times the sample standard deviation, like
// the named rules.
type FixedFactor float64

// Factor implements the Rule interface.
func (f FixedFactor) Factor(*Estimate) float64 {
	return float64(f)
}

// RuleFunc adapts a function to the Rule interface.
//
// Example, a robust spread rule:
//
//	robust := kde.RuleFunc(func(e *kde.Estimate) float64 {
//	    spread := math.Min(e.StdDev(), e.IQR()/1.349)
//	    return 1.06 * spread / e.StdDev() * math.Pow(float64(e.N()), -0.2)
//	})
type RuleFunc func(e *Estimate) float64

// Factor implements the Rule interface.
func (f RuleFunc) Factor(e *Estimate) float64 {
	return f(e)
}
