package hash

import "github.com/cespare/xxhash/v2"

// keyHasher - Computes 64-bit xxhash values over keys, optionally seeded.
// A seeded keyHasher reuses one digest and is therefore not safe for concurrent use.
type keyHasher struct {
	seed   uint64
	digest *xxhash.Digest
}

// newKeyHasher - Returns a keyHasher for the given seed
func newKeyHasher(seed uint64) keyHasher {
	kh := keyHasher{seed: seed}
	if seed != 0 {
		kh.digest = xxhash.NewWithSeed(seed)
	}
	return kh
}

// sum - Returns the hash value of key
func (K keyHasher) sum(key []byte) uint64 {
	if K.digest == nil {
		return xxhash.Sum64(key)
	}
	K.digest.ResetWithSeed(K.seed)
	_, _ = K.digest.Write(key)
	return K.digest.Sum64()
}
