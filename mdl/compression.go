package mdl

import (
	"fmt"

	"github.com/ahmet-humainr/scedar/compress"
	"github.com/ahmet-humainr/scedar/endian"
	"github.com/ahmet-humainr/scedar/format"
	"github.com/ahmet-humainr/scedar/internal/options"
	"github.com/ahmet-humainr/scedar/internal/pool"
)

// Compression is a model-free reference point: the sample is serialized
// as little-endian IEEE-754 doubles and run through a real byte codec,
// and the description length is the compressed size converted to nats.
//
// The measured length includes codec framing overhead, so it is an
// achieved code length rather than a statistical bound. It is most useful
// as a sanity reference next to the model-based scores.
type Compression struct {
	sample
	mdl   float64
	codec format.CompressionType
	stats compress.Stats
}

// NewCompression fits a compression reference model to x.
//
// An empty sample costs 0 and does not invoke the codec.
//
// Parameters:
//   - x: Sample values; the model keeps its own copy
//   - opts: Optional configuration, e.g. WithCompression
//
// Returns:
//   - *Compression: The fitted model
//   - error: Invalid option error, or codec failure
//
// Example:
//
//	model, err := mdl.NewCompression(values, mdl.WithCompression(format.CompressionLZ4))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%.4f nats at ratio %.2f\n", model.MDL(), model.Stats().CompressionRatio())
func NewCompression(x []float64, opts ...Option) (*Compression, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	c := &Compression{
		sample: newSample(x),
		codec:  cfg.Compression,
		stats:  compress.Stats{Algorithm: cfg.Compression},
	}
	if len(c.xs) == 0 {
		return c, nil
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)
	buf.Grow(len(c.xs) * 8)

	engine := endian.GetLittleEndianEngine()
	for _, v := range c.xs {
		buf.B = endian.AppendFloat64(engine, buf.B, v)
	}

	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress sample: %w", err)
	}

	c.stats.OriginalSize = int64(buf.Len())
	c.stats.CompressedSize = int64(len(compressed))
	// 8 bits per compressed byte, each worth log 2 nats.
	c.mdl = float64(len(compressed)) * 8 * natsPerBit

	return c, nil
}

// MDL returns the achieved code length in nats: 8 ·ln 2 per compressed
// byte.
func (c *Compression) MDL() float64 {
	return c.mdl
}

// Codec returns the compression algorithm used.
func (c *Compression) Codec() format.CompressionType {
	return c.codec
}

// Stats returns the sizes recorded while compressing the sample.
func (c *Compression) Stats() compress.Stats {
	return c.stats
}
