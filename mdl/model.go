package mdl

import (
	"math"
	"slices"

	"github.com/ahmet-humainr/scedar/internal/hash"
)

// Structural coding overheads in nats. A model that chooses between two
// sub-codes pays one bit; the zero-inflated case distinction is ternary and
// pays one trit.
var (
	natsPerBit  = math.Log(2)
	natsPerTrit = math.Log(3)
)

// Model is a description length model fitted to a one-dimensional sample.
//
// Models are immutable after construction and safe for concurrent reads.
// All lengths are in nats.
type Model interface {
	// MDL returns the description length of the fitted sample in nats.
	MDL() float64
	// X returns a copy of the fitted sample.
	X() []float64
	// Len returns the number of fitted values.
	Len() int
	// Fingerprint returns the xxHash64 fingerprint of the fitted sample.
	Fingerprint() uint64
}

// QueryEncoder is a Model that can also price values it was not fitted on.
type QueryEncoder interface {
	Model
	// Encode returns the cost in nats of coding q with the fitted model.
	Encode(q []float64, opts ...EncodeOption) float64
}

var (
	_ QueryEncoder = (*Multinomial)(nil)
	_ Model        = (*GaussianKDE)(nil)
	_ Model        = (*ZeroInflated)(nil)
	_ Model        = (*Compression)(nil)
)

// sample holds the fitted values shared by the concrete models. The copy
// taken at construction keeps models independent of caller mutations.
type sample struct {
	xs []float64
	fp uint64
}

func newSample(x []float64) sample {
	xs := slices.Clone(x)
	if xs == nil {
		xs = []float64{}
	}

	return sample{xs: xs, fp: hash.Fingerprint(xs)}
}

// X returns a copy of the fitted sample.
func (s *sample) X() []float64 {
	return slices.Clone(s.xs)
}

// Len returns the number of fitted values.
func (s *sample) Len() int {
	return len(s.xs)
}

// Fingerprint returns the xxHash64 fingerprint of the fitted sample.
//
// Two models fitted on bit-identical samples share a fingerprint, which
// makes it a cheap cache key for scored features.
func (s *sample) Fingerprint() uint64 {
	return s.fp
}
