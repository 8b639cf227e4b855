package scedar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahmet-humainr/scedar/errs"
	"github.com/ahmet-humainr/scedar/format"
	"github.com/ahmet-humainr/scedar/kde"
	"github.com/ahmet-humainr/scedar/mdl"
)

// TestNewMultinomial verifies coercion and fitting through the facade
func TestNewMultinomial(t *testing.T) {
	t.Run("accepts int slices", func(t *testing.T) {
		model, err := NewMultinomial([]int{1, 1, 2, 2, 2})
		require.NoError(t, err)
		require.Equal(t, 2, model.NumUnique())
		require.InDelta(t, 3.365058335046282, model.MDL(), 1e-12)
	})

	t.Run("accepts float32 slices", func(t *testing.T) {
		model, err := NewMultinomial([]float32{5, 5, 5})
		require.NoError(t, err)
		require.InDelta(t, math.Log(3), model.MDL(), 1e-12)
	})

	t.Run("accepts nil as empty", func(t *testing.T) {
		model, err := NewMultinomial(nil)
		require.NoError(t, err)
		require.Zero(t, model.MDL())
		require.Zero(t, model.Len())
	})

	t.Run("rejects nested slices", func(t *testing.T) {
		_, err := NewMultinomial([][]float64{{1, 2}})
		require.ErrorIs(t, err, errs.ErrInvalidShape)
	})
}

// TestNewGaussianKDE verifies option passthrough through the facade
func TestNewGaussianKDE(t *testing.T) {
	model, err := NewGaussianKDE([]int{1, 2, 3}, mdl.WithBandwidthRule(kde.Scott))
	require.NoError(t, err)

	h, ok := model.Bandwidth()
	require.True(t, ok)
	require.InDelta(t, math.Pow(3, -0.2), h, 1e-12)
}

// TestNewZeroInflated verifies the sparse model through the facade
func TestNewZeroInflated(t *testing.T) {
	model, err := NewZeroInflated([]int{0, 0, 1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, 3, model.NumNonzero())
	require.InDelta(t, 4.463670623714393, model.ZeroIndicatorMDL(), 1e-12)
}

// TestNewCompression verifies the reference model through the facade
func TestNewCompression(t *testing.T) {
	model, err := NewCompression([]int{1, 2, 3, 4}, mdl.WithCompression(format.CompressionNone))
	require.NoError(t, err)

	require.Equal(t, format.CompressionNone, model.Codec())
	require.InDelta(t, 4*64*math.Log(2), model.MDL(), 1e-12)
}

// TestScore verifies the default ranking score
func TestScore(t *testing.T) {
	t.Run("matches the zero-inflated model", func(t *testing.T) {
		x := []float64{0, 0, 1.5, 3.2, 0, 0.8}
		score, err := Score(x)
		require.NoError(t, err)

		model, err := NewZeroInflated(x)
		require.NoError(t, err)
		require.InDelta(t, model.MDL(), score, 1e-12)
	})

	t.Run("accepts int vectors", func(t *testing.T) {
		score, err := Score([]int{0, 0, 3, 1, 0, 12, 4, 0})
		require.NoError(t, err)
		require.Greater(t, score, 0.0)
	})

	t.Run("empty vector scores zero", func(t *testing.T) {
		score, err := Score([]float64{})
		require.NoError(t, err)
		require.Zero(t, score)
	})

	t.Run("rejects 2-D input", func(t *testing.T) {
		_, err := Score([][]int{{1}, {2}})
		require.ErrorIs(t, err, errs.ErrInvalidShape)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := Score([]string{"a", "b"})
		require.ErrorIs(t, err, errs.ErrInvalidKind)
	})
}

// TestFeatureID verifies hash-based feature identification
func TestFeatureID(t *testing.T) {
	id1 := FeatureID("MT-CO1")
	id2 := FeatureID("MT-CO1")
	id3 := FeatureID("MT-CO2")

	require.Equal(t, id1, id2)
	require.NotEqual(t, id1, id3)
	require.NotZero(t, id1)
}
