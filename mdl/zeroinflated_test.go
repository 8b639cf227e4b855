package mdl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahmet-humainr/scedar/kde"
)

// === Zero Indicator Tests ===

func TestNewZeroInflated_ZeroIndicator(t *testing.T) {
	tests := []struct {
		name        string
		x           []float64
		wantZeroInd float64
		wantNonzero int
	}{
		{name: "empty sample", x: nil, wantZeroInd: 0, wantNonzero: 0},
		{name: "all zeros", x: []float64{0, 0, 0}, wantZeroInd: math.Log(3), wantNonzero: 0},
		{name: "all non-zero", x: []float64{1, 2, 3}, wantZeroInd: math.Log(3), wantNonzero: 3},
		{
			name: "mixed",
			x:    []float64{0, 0, 1, 2, 3},
			// log 3 - 3·log(0.6) - 2·log(0.4)
			wantZeroInd: 4.463670623714393,
			wantNonzero: 3,
		},
		{
			name: "negative zero counts as zero",
			x:    []float64{0, math.Copysign(0, -1), 1, 2, 3},
			wantZeroInd: 4.463670623714393,
			wantNonzero: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := NewZeroInflated(tt.x)
			require.NoError(t, err)

			require.InDelta(t, tt.wantZeroInd, z.ZeroIndicatorMDL(), 1e-12)
			require.Equal(t, tt.wantNonzero, z.NumNonzero())
		})
	}
}

func TestNewZeroInflated_TotalIsSumOfParts(t *testing.T) {
	z, err := NewZeroInflated([]float64{0, 0, 1, 2, 3, 0, 4.5})
	require.NoError(t, err)

	require.Equal(t, z.ZeroIndicatorMDL()+z.DensityMDL(), z.MDL()) //nolint: testifylint
}

func TestNewZeroInflated_DensityMatchesGaussianKDE(t *testing.T) {
	x := []float64{0, 0, 1.5, 2.5, 0, 4.0, 5.5}
	z, err := NewZeroInflated(x)
	require.NoError(t, err)

	g, err := NewGaussianKDE([]float64{1.5, 2.5, 4.0, 5.5})
	require.NoError(t, err)

	require.InDelta(t, g.MDL(), z.DensityMDL(), 1e-12)

	zh, zok := z.Bandwidth()
	gh, gok := g.Bandwidth()
	require.Equal(t, gok, zok)
	require.InDelta(t, gh, zh, 1e-12)
}

func TestNewZeroInflated_EmptySample(t *testing.T) {
	z, err := NewZeroInflated(nil)
	require.NoError(t, err)

	require.Zero(t, z.MDL())
	require.Zero(t, z.ZeroIndicatorMDL())
	require.Zero(t, z.DensityMDL())
	require.Zero(t, z.Len())
	require.Empty(t, z.XNonzero())
}

func TestNewZeroInflated_DegenerateNonzeroSubset(t *testing.T) {
	z, err := NewZeroInflated([]float64{0, 5, 5, 5})
	require.NoError(t, err)

	// log 3 - 3·log(0.75) - log(0.25)
	wantZeroInd := math.Log(3) - 3*math.Log(0.75) - math.Log(0.25)
	require.InDelta(t, wantZeroInd, z.ZeroIndicatorMDL(), 1e-12)

	// The non-zero subset has no spread, so the density part takes the
	// quantized multinomial fallback.
	require.InDelta(t, math.Log(3), z.DensityMDL(), 1e-12)
	require.NotNil(t, z.DensityModel().Fallback())

	_, ok := z.Bandwidth()
	require.False(t, ok)
	require.Nil(t, z.Density())
}

func TestNewZeroInflated_PartitionPreservesOrder(t *testing.T) {
	z, err := NewZeroInflated([]float64{0, 3, 0, 1, 2})
	require.NoError(t, err)

	require.Equal(t, []float64{3, 1, 2}, z.XNonzero())
	require.Equal(t, []float64{0, 3, 0, 1, 2}, z.X())
	require.Equal(t, 5, z.Len())
}

func TestNewZeroInflated_Options(t *testing.T) {
	t.Run("bandwidth rule reaches the density model", func(t *testing.T) {
		z, err := NewZeroInflated([]float64{0, 1, 2, 3}, WithBandwidthRule(kde.Scott))
		require.NoError(t, err)

		h, ok := z.Bandwidth()
		require.True(t, ok)
		// stddev of [1,2,3] is exactly 1.
		require.InDelta(t, math.Pow(3, -0.2), h, 1e-12)
	})

	t.Run("nil rule is rejected", func(t *testing.T) {
		_, err := NewZeroInflated([]float64{0, 1, 2, 3}, WithBandwidthRule(nil))
		require.Error(t, err)
	})
}

func TestZeroInflated_SampleIsolation(t *testing.T) {
	x := []float64{0, 1, 2}
	z, err := NewZeroInflated(x)
	require.NoError(t, err)

	x[1] = 42
	require.Equal(t, []float64{0, 1, 2}, z.X())

	z.XNonzero()[0] = 42
	require.Equal(t, []float64{1, 2}, z.XNonzero())
}
