// Package mdl provides minimum description length models for scoring one-dimensional samples.
//
// The description length of a sample under a fitted model measures, in nats,
// how many units of information the model needs to reproduce the sample. Low
// values mean the sample is structured and compressible; high values mean it
// is close to noise. Single-cell gene expression pipelines use these scores
// to rank features: a gene whose expression vector has a short description
// relative to its size carries signal worth keeping.
//
// # Key Features
//
//   - **Multinomial code**: Empirical multinomial model with exact per-value
//     costs and optional query encoding against the fitted distribution
//   - **Gaussian KDE code**: Continuous model using a kernel density estimate
//     with pluggable bandwidth rules, falling back to a quantized multinomial
//     code when the sample cannot support a density fit
//   - **Zero-inflated code**: Two-part model for sparse data, pricing the
//     zero/non-zero pattern and the non-zero magnitudes separately
//   - **Compression reference**: Model-free baseline measured by running a
//     real byte codec over the serialized sample
//
// # Usage Patterns
//
// ## Scoring a Sample
//
// Fit a zero-inflated model and read the total description length:
//
//	model, err := mdl.NewZeroInflated(values)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%.4f nats over %d values\n", model.MDL(), model.Len())
//
// ## Encoding Queries
//
// The multinomial model can price new values against an already fitted
// distribution:
//
//	model := mdl.NewMultinomial(train)
//	cost := model.Encode(query, mdl.WithAdjacentFallback())
//
// Present values cost the negative log of their observed frequency. Absent
// values either pay a flat fallback based on the query's magnitude range or,
// with WithAdjacentFallback, borrow the probability of the nearest fitted
// value.
//
// ## Choosing a Bandwidth Rule
//
// The density-based models accept any kde.Rule:
//
//	model, err := mdl.NewGaussianKDE(values, mdl.WithBandwidthRule(kde.Scott))
//
// # Model Selection
//
// The concrete models complement each other:
//
//   - **Multinomial**: Exact for discrete or heavily tied data; treats every
//     distinct float64 as its own symbol
//   - **GaussianKDE**: Suited to continuous data with genuine spread; adds a
//     one-bit model-choice overhead to the negative log-likelihood
//   - **ZeroInflated**: The default score for sparse non-negative data such
//     as transcript counts, where most entries are zero
//   - **Compression**: A measured reference point rather than a statistical
//     model; useful as a sanity bound for the others
//
// # Degenerate Samples
//
// A sample whose standard deviation is zero or undefined cannot support a
// kernel density fit. GaussianKDE (and ZeroInflated through it) then
// quantizes the values to two decimal places and prices the discrete pattern
// with a multinomial code instead. The fallback is deterministic and
// recorded on the model: Bandwidth reports unavailable and Fallback exposes
// the inner multinomial for inspection.
//
// # Units
//
// All description lengths are in nats (natural log base). Divide by ln 2 for
// bits. Costs of the structural side channels are named constants:
// one bit (log 2) for the model choice, one trit (log 3) for the
// zero-pattern case distinction.
package mdl
