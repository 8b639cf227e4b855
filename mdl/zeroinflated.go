package mdl

import (
	"math"
	"slices"

	"github.com/ahmet-humainr/scedar/internal/options"
	"github.com/ahmet-humainr/scedar/kde"
)

// ZeroInflated prices a sparse sample in two parts: a ternary code for
// the zero/non-zero pattern and a GaussianKDE code for the non-zero
// magnitudes. It is the default score for transcript-count style data
// where most entries are zero.
type ZeroInflated struct {
	sample
	xNonzero     []float64
	zeroIndMdl   float64
	densityModel *GaussianKDE
}

// NewZeroInflated fits a zero-inflated description length model to x.
//
// The sample is partitioned into zero and non-zero entries (order
// preserved; -0 counts as zero). The zero-indicator part costs one trit
// for an empty or all-zero or all-non-zero sample and otherwise one trit
// plus the Bernoulli code of the pattern. The non-zero part is priced by
// a GaussianKDE fitted with the same options.
//
// Parameters:
//   - x: Sample values; the model keeps its own copy
//   - opts: Optional configuration, e.g. WithBandwidthRule
//
// Returns:
//   - *ZeroInflated: The fitted model
//   - error: Invalid option error
//
// Example:
//
//	model, err := mdl.NewZeroInflated(counts)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("total %.4f = pattern %.4f + density %.4f\n",
//	    model.MDL(), model.ZeroIndicatorMDL(), model.DensityMDL())
func NewZeroInflated(x []float64, opts ...Option) (*ZeroInflated, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	z := &ZeroInflated{sample: newSample(x)}
	z.xNonzero = make([]float64, 0, len(z.xs))
	for _, v := range z.xs {
		if v != 0 {
			z.xNonzero = append(z.xNonzero, v)
		}
	}

	z.zeroIndMdl = zeroIndicatorMDL(len(z.xs), len(z.xNonzero))

	densityModel := &GaussianKDE{sample: newSample(z.xNonzero)}
	densityModel.fit(cfg.BandwidthRule)
	z.densityModel = densityModel

	return z, nil
}

// zeroIndicatorMDL prices the zero/non-zero pattern of a sample with n
// values of which k are non-zero. The leading trit distinguishes the
// all-zero, all-non-zero, and mixed cases; only the mixed case needs the
// per-value Bernoulli code.
func zeroIndicatorMDL(n, k int) float64 {
	if n == 0 {
		return 0
	}
	if k == 0 || k == n {
		return natsPerTrit
	}

	p := float64(k) / float64(n)

	return natsPerTrit - float64(k)*math.Log(p) - float64(n-k)*math.Log(1-p)
}

// MDL returns the total description length in nats, the sum of the
// zero-indicator part and the density part.
func (z *ZeroInflated) MDL() float64 {
	return z.zeroIndMdl + z.densityModel.MDL()
}

// ZeroIndicatorMDL returns the cost in nats of the zero/non-zero pattern.
func (z *ZeroInflated) ZeroIndicatorMDL() float64 {
	return z.zeroIndMdl
}

// DensityMDL returns the cost in nats of the non-zero magnitudes.
func (z *ZeroInflated) DensityMDL() float64 {
	return z.densityModel.MDL()
}

// XNonzero returns a copy of the non-zero entries in sample order.
func (z *ZeroInflated) XNonzero() []float64 {
	return slices.Clone(z.xNonzero)
}

// NumNonzero returns the number of non-zero entries.
func (z *ZeroInflated) NumNonzero() int {
	return len(z.xNonzero)
}

// Bandwidth returns the kernel standard deviation of the non-zero density
// fit. The second return is false when no density was fitted.
func (z *ZeroInflated) Bandwidth() (float64, bool) {
	return z.densityModel.Bandwidth()
}

// Density returns the density estimate fitted on the non-zero entries, or
// nil when unavailable.
func (z *ZeroInflated) Density() *kde.Estimate {
	return z.densityModel.Density()
}

// DensityModel returns the GaussianKDE fitted on the non-zero entries.
func (z *ZeroInflated) DensityModel() *GaussianKDE {
	return z.densityModel
}
