// Package scedar provides minimum description length scoring for one-dimensional samples.
//
// Scedar ranks features by how compressible their value vectors are: a
// vector with a short description length relative to its size carries
// structure worth keeping, while one close to random noise does not. The
// scores come from a family of description length models over float64
// samples, with a zero-inflated model as the default for sparse data such
// as single-cell transcript counts.
//
// # Core Features
//
//   - Coercion of arbitrary numeric slices and arrays into sample vectors
//   - Empirical multinomial code with query encoding
//   - Gaussian KDE code with pluggable bandwidth rules and a deterministic
//     fallback for degenerate samples
//   - Zero-inflated two-part code for sparse data
//   - Compression-based reference lengths (Zstd, S2, LZ4)
//   - Hash-based feature identification (64-bit xxHash64)
//
// # Basic Usage
//
// Scoring a feature vector:
//
//	import "github.com/ahmet-humainr/scedar"
//
//	counts := []int{0, 0, 3, 1, 0, 12, 4, 0}
//	score, err := scedar.Score(counts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.4f nats\n", score)
//
// Fitting a specific model with options:
//
//	model, err := scedar.NewZeroInflated(counts,
//	    mdl.WithBandwidthRule(kde.Scott),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("pattern=%.4f density=%.4f\n",
//	    model.ZeroIndicatorMDL(), model.DensityMDL())
//
// # Package Structure
//
// This package provides convenient top-level wrappers that accept any
// numeric slice or array and handle coercion. For explicit control over
// coercion and model fitting, use the vector and mdl packages directly.
package scedar

import (
	"github.com/ahmet-humainr/scedar/format"
	"github.com/ahmet-humainr/scedar/internal/hash"
	"github.com/ahmet-humainr/scedar/mdl"
	"github.com/ahmet-humainr/scedar/vector"
)

// NewMultinomial fits an empirical multinomial model to any numeric slice
// or array.
//
// Parameters:
//   - x: Input vector ([]float64, []int, [N]float32, []any of numbers, ...)
//
// Returns:
//   - *mdl.Multinomial: The fitted model
//   - error: Coercion error for non-numeric or non-1D input
//
// Example:
//
//	model, err := scedar.NewMultinomial([]int{1, 1, 2, 2, 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost := model.Encode([]float64{2, 3}, mdl.WithAdjacentFallback())
func NewMultinomial(x any) (*mdl.Multinomial, error) {
	xs, err := vector.Coerce(x, format.KindFloat64)
	if err != nil {
		return nil, err
	}

	return mdl.NewMultinomial(xs), nil
}

// NewGaussianKDE fits a Gaussian KDE model to any numeric slice or array.
//
// Parameters:
//   - x: Input vector
//   - opts: Optional configuration (see mdl.WithBandwidthRule)
//
// Returns:
//   - *mdl.GaussianKDE: The fitted model
//   - error: Coercion or option error
func NewGaussianKDE(x any, opts ...mdl.Option) (*mdl.GaussianKDE, error) {
	xs, err := vector.Coerce(x, format.KindFloat64)
	if err != nil {
		return nil, err
	}

	return mdl.NewGaussianKDE(xs, opts...)
}

// NewZeroInflated fits a zero-inflated model to any numeric slice or array.
//
// This is the model behind Score and the recommended default for sparse
// non-negative data.
//
// Parameters:
//   - x: Input vector
//   - opts: Optional configuration (see mdl.WithBandwidthRule)
//
// Returns:
//   - *mdl.ZeroInflated: The fitted model
//   - error: Coercion or option error
func NewZeroInflated(x any, opts ...mdl.Option) (*mdl.ZeroInflated, error) {
	xs, err := vector.Coerce(x, format.KindFloat64)
	if err != nil {
		return nil, err
	}

	return mdl.NewZeroInflated(xs, opts...)
}

// NewCompression fits a compression reference model to any numeric slice
// or array.
//
// Parameters:
//   - x: Input vector
//   - opts: Optional configuration (see mdl.WithCompression)
//
// Returns:
//   - *mdl.Compression: The fitted model
//   - error: Coercion, option, or codec error
//
// Example:
//
//	model, err := scedar.NewCompression(values,
//	    mdl.WithCompression(format.CompressionLZ4),
//	)
func NewCompression(x any, opts ...mdl.Option) (*mdl.Compression, error) {
	xs, err := vector.Coerce(x, format.KindFloat64)
	if err != nil {
		return nil, err
	}

	return mdl.NewCompression(xs, opts...)
}

// Score returns the zero-inflated description length of x in nats.
//
// This is the default feature ranking score: fit with Silverman bandwidth,
// sum of the zero-pattern cost and the non-zero density cost. Lower scores
// relative to vector length mean more structure.
//
// Parameters:
//   - x: Input vector
//
// Returns:
//   - float64: Description length in nats
//   - error: Coercion error for non-numeric or non-1D input
//
// Example:
//
//	score, err := scedar.Score([]float64{0, 0, 1.5, 3.2, 0, 0.8})
//	if err != nil {
//	    log.Fatal(err)
//	}
func Score(x any) (float64, error) {
	model, err := NewZeroInflated(x)
	if err != nil {
		return 0, err
	}

	return model.MDL(), nil
}

// FeatureID converts a feature name string to its 64-bit hash identifier.
//
// Scored features are identified by xxHash64 of their name, which keeps
// lookups allocation-free and collision-resistant for realistic feature
// catalogs.
//
// Parameters:
//   - name: Feature name (e.g. gene symbol)
//
// Returns:
//   - uint64: 64-bit xxHash64 identifier
//
// Example:
//
//	id := scedar.FeatureID("MT-CO1")
func FeatureID(name string) uint64 {
	return hash.ID(name)
}
