// Package hash provides the digest primitives behind model and object
// fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// Digest is a streaming 64-bit hash state.
type Digest = xxhash.Digest

// New returns a fresh streaming digest.
func New() *Digest {
	return xxhash.New()
}

// Sum64 computes the xxHash64 of data in one shot.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
