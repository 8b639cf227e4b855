// Package compress provides compression and decompression codecs for serialized sample payloads.
//
// The mdl package uses these codecs to measure an achieved code length: a
// sample vector is serialized as little-endian IEEE-754 doubles and run
// through a real general-purpose compressor, giving a model-free reference
// point next to the multinomial and density-based description lengths.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp** (format.CompressionNone)
//
// Returns payloads unchanged. Use as a baseline: the reference code length
// becomes exactly 8 bytes per value.
//
// **Zstandard** (format.CompressionZstd)
//
// Best ratio, moderate speed. The default for reference models: repeated
// and slowly varying values compress well, so the measured code length
// tracks the statistical scores closely.
//
// Two implementations are available. The pure-Go klauspost encoder is the
// default; building with the scedar_gozstd tag switches to the cgo libzstd
// binding for workloads where native compression speed matters.
//
// **S2** (format.CompressionS2)
//
// Balanced ratio and speed; useful when scoring many features in bulk.
//
// **LZ4** (format.CompressionLZ4)
//
// Fastest, most conservative ratio.
//
// # Selecting a Codec
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// # Thread Safety
//
// All built-in codecs are stateless values backed by internal pools and
// are safe for concurrent use.
package compress
