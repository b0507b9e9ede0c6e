package hash

import (
	"github.com/gostonefire/stringhash/internal/utils"
)

// LinearProbingHashAlgorithm - The internally used slot selection algorithm is implemented using xxhash64 to
// create a hash value over the key and then applying slot = hash & (actualTableSize - 1) to get the home slot,
// where actualTableSize is the nearest bigger exponent of 2 of the requested table size.
type LinearProbingHashAlgorithm struct {
	tableSize int64
	hasher    keyHasher
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
//   - tableSize is the requested table size, it will be rounded up to nearest exponent of 2
//   - seed is the xxhash seed, 0 (zero) gives the unseeded xxhash64
func NewLinearProbingHashAlgorithm(tableSize int64, seed uint64) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{hasher: newKeyHasher(seed)}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
func (L *LinearProbingHashAlgorithm) SetTableSize(tableSize int64) {
	L.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(L.hasher.sum(key) & uint64(L.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + iteration) & (L.tableSize - 1)
}
