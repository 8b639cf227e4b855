package compress

// ZstdCompressor provides Zstandard compression for serialized sample payloads.
//
// Zstd is the default codec for compression-based reference models: it finds
// the repeated byte patterns of duplicated and slowly varying float64 samples,
// so the achieved code length stays close to what the statistical models
// report for low-entropy data.
//
// Performance characteristics:
//   - Compression: ~5-20 ns/byte (depending on compression level)
//   - Decompression: ~2-5 ns/byte
//   - Compression ratio: 5:1 to 20:1 for samples with many repeated values
//   - Memory usage: Moderate (encoders and decoders are pooled)
//
// The default implementation is the pure-Go klauspost encoder. Building with
// the scedar_gozstd tag switches to the cgo libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
