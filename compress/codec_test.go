package compress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahmet-humainr/scedar/endian"
	"github.com/ahmet-humainr/scedar/format"
)

// samplePayload serializes values the way the mdl package does: little-endian
// IEEE-754 doubles, one after another.
func samplePayload(values []float64) []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = endian.AppendFloat64(engine, buf, v)
	}

	return buf
}

func repeatedPayload(value float64, n int) []byte {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}

	return samplePayload(values)
}

func noisyPayload(n int) []byte {
	values := make([]float64, n)
	x := 0.5
	for i := range values {
		// Deterministic chaotic sequence, incompressible enough for tests.
		x = 4.0 * x * (1.0 - x)
		values[i] = x
	}

	return samplePayload(values)
}

// === Round-Trip Tests ===

func TestCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"repeated values": repeatedPayload(3.14159, 512),
		"noisy values":    noisyPayload(512),
		"single value":    samplePayload([]float64{42.0}),
		"special values":  samplePayload([]float64{0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1), math.NaN()}),
	}

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			for name, payload := range payloads {
				t.Run(name, func(t *testing.T) {
					compressed, err := codec.Compress(payload)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, payload, decompressed)
				})
			}
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodecs_RepeatedValuesShrink(t *testing.T) {
	payload := repeatedPayload(1.5, 4096)

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload),
				"constant payload should compress below raw size")
		})
	}
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := samplePayload([]float64{1, 2, 3})

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Same(t, &payload[0], &compressed[0], "no-op should not copy")
	require.Len(t, compressed, len(payload))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &payload[0], &decompressed[0])
}

// === Corrupted Input Tests ===

func TestCodecs_CorruptedInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03}

	t.Run("zstd rejects garbage", func(t *testing.T) {
		codec := NewZstdCompressor()
		_, err := codec.Decompress(garbage)
		require.Error(t, err)
	})

	t.Run("s2 rejects garbage", func(t *testing.T) {
		codec := NewS2Compressor()
		_, err := codec.Decompress(garbage)
		require.Error(t, err)
	})
}

func TestLZ4Compressor_AdaptiveDecompress(t *testing.T) {
	codec := NewLZ4Compressor()

	// A long constant run compresses far below 1/4 of its original size, so
	// decompression must grow its initial guess to recover the payload.
	payload := repeatedPayload(0.0, 64*1024)
	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(payload))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

// === Stats Tests ===

func TestStats_CompressionRatio(t *testing.T) {
	tests := []struct {
		name           string
		originalSize   int64
		compressedSize int64
		wantRatio      float64
		wantSavings    float64
	}{
		{name: "half size", originalSize: 1000, compressedSize: 500, wantRatio: 0.5, wantSavings: 50.0},
		{name: "no benefit", originalSize: 1000, compressedSize: 1000, wantRatio: 1.0, wantSavings: 0.0},
		{name: "overhead", originalSize: 100, compressedSize: 125, wantRatio: 1.25, wantSavings: -25.0},
		{name: "empty input", originalSize: 0, compressedSize: 0, wantRatio: 0.0, wantSavings: 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := Stats{
				Algorithm:      format.CompressionZstd,
				OriginalSize:   tt.originalSize,
				CompressedSize: tt.compressedSize,
			}
			require.InDelta(t, tt.wantRatio, stats.CompressionRatio(), 1e-12)
			require.InDelta(t, tt.wantSavings, stats.SpaceSavings(), 1e-12)
		})
	}
}

// === Codec Lookup Tests ===

func TestGetCodec(t *testing.T) {
	t.Run("returns codec for each built-in type", func(t *testing.T) {
		for _, ct := range []format.CompressionType{
			format.CompressionNone,
			format.CompressionZstd,
			format.CompressionS2,
			format.CompressionLZ4,
		} {
			codec, err := GetCodec(ct)
			require.NoError(t, err)
			require.NotNil(t, codec)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		codec, err := GetCodec(format.CompressionType(0xAB))
		require.Error(t, err)
		require.Nil(t, codec)
		require.Contains(t, err.Error(), "unsupported compression type")
	})

	t.Run("returns same instance on repeated lookups", func(t *testing.T) {
		first, err := GetCodec(format.CompressionZstd)
		require.NoError(t, err)
		second, err := GetCodec(format.CompressionZstd)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func TestCodecs_ConcurrentUse(t *testing.T) {
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)

	payload := noisyPayload(1024)
	done := make(chan error, 16)

	for range 16 {
		go func() {
			for range 50 {
				compressed, err := codec.Compress(payload)
				if err != nil {
					done <- err

					return
				}
				if _, err := codec.Decompress(compressed); err != nil {
					done <- err

					return
				}
			}
			done <- nil
		}()
	}

	for range 16 {
		require.NoError(t, <-done)
	}
}
