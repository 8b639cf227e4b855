package hash

import (
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/ahmet-humainr/scedar/endian"
)

var engine = endian.GetLittleEndianEngine()

// Fingerprint computes the xxHash64 of a sample vector's little-endian
// IEEE-754 byte representation.
//
// Fitted models carry this value so callers can key caches or detect
// identical samples without comparing vectors element-wise. Bit-identical
// vectors produce identical fingerprints; +0 and -0 differ, and NaN
// payloads hash as-is.
func Fingerprint(xs []float64) uint64 {
	digest := xxhash.New()

	var buf [8]byte
	for _, v := range xs {
		engine.PutUint64(buf[:], math.Float64bits(v))
		_, _ = digest.Write(buf[:])
	}

	return digest.Sum64()
}
