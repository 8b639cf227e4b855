// Package hash provides xxHash64 identifiers for features and fitted samples.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// Used to derive stable 64-bit feature identifiers from feature names.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
