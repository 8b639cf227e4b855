package mdl

import (
	"errors"

	"github.com/ahmet-humainr/scedar/compress"
	"github.com/ahmet-humainr/scedar/format"
	"github.com/ahmet-humainr/scedar/internal/options"
	"github.com/ahmet-humainr/scedar/kde"
)

// Config holds configuration shared by the model constructors.
type Config struct {
	BandwidthRule kde.Rule
	Compression   format.CompressionType
}

// defaultConfig returns default config (Silverman bandwidth, Zstd reference
// codec).
func defaultConfig() Config {
	return Config{
		BandwidthRule: kde.Silverman,
		Compression:   format.CompressionZstd,
	}
}

// Option is a functional option for model construction.
type Option = options.Option[*Config]

// WithBandwidthRule sets the bandwidth rule used by density-based models.
func WithBandwidthRule(rule kde.Rule) Option {
	return options.New(func(cfg *Config) error {
		if rule == nil {
			return errors.New("bandwidth rule cannot be nil")
		}
		cfg.BandwidthRule = rule

		return nil
	})
}

// WithCompression sets the codec used by the compression reference model.
// The compression type must name a built-in codec.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		cfg.Compression = compression

		return nil
	})
}

// EncodeConfig holds configuration for Multinomial.Encode.
type EncodeConfig struct {
	AdjacentFallback bool
}

// EncodeOption is a functional option for Multinomial.Encode.
type EncodeOption = options.Option[*EncodeConfig]

// WithAdjacentFallback makes Encode price absent query values with the
// probability of the nearest fitted value instead of the flat magnitude
// based fallback.
func WithAdjacentFallback() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.AdjacentFallback = true
	})
}
