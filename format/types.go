package format

type (
	Kind            uint8
	CompressionType uint8
)

const (
	KindFloat64 Kind = 0x1 // KindFloat64 represents IEEE-754 double precision elements.
	KindFloat32 Kind = 0x2 // KindFloat32 represents elements rounded through single precision.
	KindInt64   Kind = 0x3 // KindInt64 represents elements truncated toward zero.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindFloat64:
		return "Float64"
	case KindFloat32:
		return "Float32"
	case KindInt64:
		return "Int64"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
