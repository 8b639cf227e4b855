package mdl

import (
	"math"
	"slices"

	"github.com/ahmet-humainr/scedar/internal/options"
)

// Multinomial prices a sample with the empirical multinomial code: each
// value costs the negative log of its observed relative frequency.
//
// The model treats every distinct float64 bit pattern as its own symbol
// (except that +0 and -0 coincide), so it is exact for discrete data and
// pessimistic for continuous data, where most values occur once.
type Multinomial struct {
	sample
	uniques []float64
	counts  []int
	probs   []float64
	lut     map[float64]float64
	mdl     float64
}

// NewMultinomial fits a multinomial description length model to x.
//
// The description length is 0 for an empty sample, log n when all values
// are equal (one symbol, n repetitions), and otherwise the sum of
// -log(p_v) over all values, with p_v the relative frequency of v.
//
// Parameters:
//   - x: Sample values; the model keeps its own copy
//
// Returns:
//   - *Multinomial: The fitted model
//
// Example:
//
//	model := mdl.NewMultinomial([]float64{1, 1, 2, 2, 2})
//	fmt.Printf("%.4f nats\n", model.MDL())
func NewMultinomial(x []float64) *Multinomial {
	m := &Multinomial{sample: newSample(x)}
	m.fit()

	return m
}

func (m *Multinomial) fit() {
	n := len(m.xs)
	if n == 0 {
		return
	}

	sorted := slices.Clone(m.xs)
	slices.Sort(sorted)

	// Run-length over the sorted copy. NaN never compares equal, so every
	// NaN becomes its own singleton symbol.
	for i := 0; i < n; {
		j := i + 1
		for j < n && sorted[j] == sorted[i] {
			j++
		}
		m.uniques = append(m.uniques, sorted[i])
		m.counts = append(m.counts, j-i)
		i = j
	}

	m.probs = make([]float64, len(m.uniques))
	m.lut = make(map[float64]float64, len(m.uniques))
	for i, c := range m.counts {
		p := float64(c) / float64(n)
		m.probs[i] = p
		m.lut[m.uniques[i]] = p
	}

	if len(m.uniques) == 1 {
		m.mdl = math.Log(float64(n))

		return
	}

	for i, c := range m.counts {
		m.mdl -= math.Log(m.probs[i]) * float64(c)
	}
}

// MDL returns the description length of the fitted sample in nats.
func (m *Multinomial) MDL() float64 {
	return m.mdl
}

// Encode returns the cost in nats of coding the query values with the
// fitted distribution.
//
// Each query value present in the fitted sample costs -log of its fitted
// probability. Absent values pay a flat fallback of log(2 ·max|q|), the
// length of a uniform code over the query's own magnitude range; a query
// of all zeros spans no range and its fallback is 0 rather than log 0.
// With WithAdjacentFallback, absent values instead borrow the probability
// of the nearest fitted unique value.
//
// An empty query costs 0. Against an empty model every value pays the
// flat fallback.
//
// Parameters:
//   - q: Query values
//   - opts: Optional EncodeOption values
//
// Returns:
//   - float64: Total cost in nats
func (m *Multinomial) Encode(q []float64, opts ...EncodeOption) float64 {
	if len(q) == 0 {
		return 0
	}

	var cfg EncodeConfig
	// Encode options are infallible.
	_ = options.Apply(&cfg, opts...)

	var maxAbs float64
	for _, v := range q {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	uniform := 0.0
	if maxAbs > 0 {
		uniform = math.Log(maxAbs * 2)
	}

	if len(m.xs) == 0 {
		return float64(len(q)) * uniform
	}

	total := 0.0
	for _, v := range q {
		switch p, ok := m.lut[v]; {
		case ok:
			total += -math.Log(p)
		case cfg.AdjacentFallback:
			total += -math.Log(m.adjacentProb(v))
		default:
			total += uniform
		}
	}

	return total
}

// adjacentProb resolves an absent query value to the probability of the
// nearest fitted unique value. Below the minimum or above the maximum it
// takes the boundary probability; an exact midpoint takes the larger of
// the two neighbors.
func (m *Multinomial) adjacentProb(v float64) float64 {
	pos, _ := slices.BinarySearch(m.uniques, v)
	if pos <= 0 {
		return m.probs[0]
	}
	if pos >= len(m.uniques) {
		return m.probs[len(m.probs)-1]
	}

	left := v - m.uniques[pos-1]
	right := m.uniques[pos] - v
	switch {
	case left < right:
		return m.probs[pos-1]
	case left > right:
		return m.probs[pos]
	default:
		return math.Max(m.probs[pos-1], m.probs[pos])
	}
}

// NumUnique returns the number of distinct fitted values.
func (m *Multinomial) NumUnique() int {
	return len(m.uniques)
}

// UniqueValues returns a copy of the distinct fitted values in ascending
// order.
func (m *Multinomial) UniqueValues() []float64 {
	return slices.Clone(m.uniques)
}

// Counts returns a copy of the occurrence counts, aligned with
// UniqueValues.
func (m *Multinomial) Counts() []int {
	return slices.Clone(m.counts)
}

// Probabilities returns a copy of the relative frequencies, aligned with
// UniqueValues.
func (m *Multinomial) Probabilities() []float64 {
	return slices.Clone(m.probs)
}

// Prob returns the fitted probability of v and whether v occurs in the
// fitted sample. Lookup is by exact float64 equality.
func (m *Multinomial) Prob(v float64) (float64, bool) {
	p, ok := m.lut[v]

	return p, ok
}
