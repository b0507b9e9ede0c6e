package hashfunc

// HashAlgorithm - Interface that permits a user of the StringHashTable to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new table. Hence, if a custom hash algorithm is supplied that implements
	// this interface and the instance already has a table size, it will be overwritten by the capacity
	// that was supplied when creating the table. The table keeps using the instance afterwards, so an instance
	// must not be shared between tables.
	//   - tableSize is the number of slots the table has to address at least
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates a home slot index between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// The function must be deterministic for the lifetime of the table, identities depend on it.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// It is very important that this function return the actual table size and not just the table size given at
	// instantiating time or in a call to SetTableSize. Implementations rounding up to nearest 2 to the power of x
	// must reflect that here, since the table allocates exactly this many slots.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to visit in a given probe iteration given the home slot from HashFunc1.
	// Iteration 0 must return the home slot. For some probing algorithms it may be that they return a probing
	// value outside the table range, that is alright, the internal loop will then just increment the iteration
	// by one and call this function again.
	ProbeIteration(hf1Value, iteration int64) int64
}
