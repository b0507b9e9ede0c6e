package hash

import (
	"github.com/gostonefire/stringhash/internal/utils"
)

// QuadraticProbingHashAlgorithm - The internally used slot selection algorithm is implemented using xxhash64 to
// create a hash value over the key and then applying slot = hash & (actualTableSize - 1) to get the home slot,
// where actualTableSize is the nearest bigger exponent of 2 of the requested table size.
//
// Probing uses triangular numbers, (i*i + i) / 2, which on a table sized to a power of 2 visits every slot
// exactly once during the first tableSize iterations.
type QuadraticProbingHashAlgorithm struct {
	tableSize int64
	hasher    keyHasher
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
//   - tableSize is the requested table size, it will be rounded up to nearest exponent of 2
//   - seed is the xxhash seed, 0 (zero) gives the unseeded xxhash64
func NewQuadraticProbingHashAlgorithm(tableSize int64, seed uint64) *QuadraticProbingHashAlgorithm {
	ha := &QuadraticProbingHashAlgorithm{hasher: newKeyHasher(seed)}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
func (Q *QuadraticProbingHashAlgorithm) SetTableSize(tableSize int64) {
	Q.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(Q.hasher.sum(key) & uint64(Q.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + (iteration*iteration+iteration)/2) & (Q.tableSize - 1)
}
