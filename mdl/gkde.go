package mdl

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ahmet-humainr/scedar/internal/options"
	"github.com/ahmet-humainr/scedar/kde"
)

// GaussianKDE prices a sample with a Gaussian kernel density estimate
// fitted on the sample itself: the description length is the negative
// log-density summed over the training points, plus one bit for the
// model choice.
//
// Samples that cannot support a density fit (no spread, non-finite
// values) take a deterministic fallback: values are quantized to two
// decimal places and priced with a Multinomial code instead. The
// fallback is visible through Bandwidth and Fallback.
type GaussianKDE struct {
	sample
	mdl      float64
	density  *kde.Estimate
	fallback *Multinomial
}

// NewGaussianKDE fits a Gaussian KDE description length model to x.
//
// Parameters:
//   - x: Sample values; the model keeps its own copy
//   - opts: Optional configuration, e.g. WithBandwidthRule
//
// Returns:
//   - *GaussianKDE: The fitted model
//   - error: Invalid option error; fit degeneracy is not an error
//
// Example:
//
//	model, err := mdl.NewGaussianKDE(values, mdl.WithBandwidthRule(kde.Scott))
//	if err != nil {
//	    return err
//	}
//	if h, ok := model.Bandwidth(); ok {
//	    fmt.Printf("%.4f nats, bandwidth %.4f\n", model.MDL(), h)
//	}
func NewGaussianKDE(x []float64, opts ...Option) (*GaussianKDE, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	g := &GaussianKDE{sample: newSample(x)}
	g.fit(cfg.BandwidthRule)

	return g, nil
}

func (g *GaussianKDE) fit(rule kde.Rule) {
	if len(g.xs) == 0 {
		return
	}

	density, err := kde.Fit(g.xs, rule)
	if err != nil {
		g.fallback = NewMultinomial(quantize(g.xs))
		g.mdl = g.fallback.MDL()

		return
	}

	g.density = density
	g.mdl = natsPerBit - floats.Sum(density.LogDensityAt(g.xs))
}

// quantize truncates values to two decimal places, trunc(v·100), for the
// degenerate-sample fallback. Non-finite values pass through unchanged.
func quantize(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Trunc(v * 100)
	}

	return out
}

// MDL returns the description length of the fitted sample in nats.
//
// On the density path this is one bit plus the negative log-density of
// the sample under its own estimate; on the fallback path it is the
// quantized Multinomial length. An empty sample costs 0.
func (g *GaussianKDE) MDL() float64 {
	return g.mdl
}

// Bandwidth returns the kernel standard deviation of the fitted density.
// The second return is false when no density was fitted (empty sample or
// fallback path).
func (g *GaussianKDE) Bandwidth() (float64, bool) {
	if g.density == nil {
		return 0, false
	}

	return g.density.Bandwidth(), true
}

// Density returns the fitted density estimate, or nil when the model took
// the fallback path or the sample was empty.
func (g *GaussianKDE) Density() *kde.Estimate {
	return g.density
}

// Fallback returns the quantized Multinomial model used for a degenerate
// sample, or nil when the density fit succeeded or the sample was empty.
func (g *GaussianKDE) Fallback() *Multinomial {
	return g.fallback
}
