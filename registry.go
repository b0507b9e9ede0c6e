package stringhash

import (
	"sync"

	"github.com/gostonefire/stringhash/crt"
)

// Handle - Opaque numeric reference to a table created by Create. The zero Handle never refers to a table.
type Handle int64

// registryEntry - A live table and the lock serializing calls against it
type registryEntry struct {
	mu    sync.Mutex
	table *StringHashTable
}

// registry - Process wide set of live tables reachable by Handle
var registry = struct {
	mu     sync.RWMutex
	tables map[Handle]*registryEntry
	last   Handle
}{
	tables: make(map[Handle]*registryEntry),
}

// Create - Creates a new table and returns a handle to it. The table lives until Destroy is called with the handle.
// Calls through the handle are serialized, so a handle may be shared between goroutines.
//   - capacity is the maximum number of distinct keys the table will hold, it must be higher than 0 (zero)
//   - conf is optional configuration, use Conf{} for defaults
//
// It returns:
//   - handle is the handle to the new table
//   - err is either of type crt.InvalidCapacity, crt.CapacityTooLarge or a standard error, if something went wrong
func Create(capacity int64, conf Conf) (handle Handle, err error) {
	table, _, err := NewStringHashTable(capacity, conf)
	if err != nil {
		return
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.last++
	handle = registry.last
	registry.tables[handle] = &registryEntry{table: table}

	return
}

// Set - Calls StringHashTable.Set on the table referred to by handle.
// It returns an error of type crt.UnknownHandle if the handle does not refer to a live table.
func Set(handle Handle, key []byte) (result Result, err error) {
	entry, err := lookup(handle)
	if err != nil {
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.table.Set(key)
}

// SetCode - Is Set for callers that can only receive a number, see Result.Code for the encoding.
// Any error is reported as 0 (zero).
func SetCode(handle Handle, key []byte) int64 {
	result, err := Set(handle, key)
	if err != nil {
		return 0
	}

	return result.Code()
}

// Check - Calls StringHashTable.Check on the table referred to by handle.
// It returns an error of type crt.UnknownHandle if the handle does not refer to a live table.
func Check(handle Handle, key []byte) (identity int64, err error) {
	entry, err := lookup(handle)
	if err != nil {
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.table.Check(key)
}

// Delete - Calls StringHashTable.Delete on the table referred to by handle.
// It returns an error of type crt.UnknownHandle if the handle does not refer to a live table.
func Delete(handle Handle, key []byte) (identity int64, err error) {
	entry, err := lookup(handle)
	if err != nil {
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.table.Delete(key)
}

// Destroy - Releases the table referred to by handle, the handle is invalid afterwards and is never reissued.
// It returns an error of type crt.UnknownHandle if the handle does not refer to a live table.
func Destroy(handle Handle) (err error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, ok := registry.tables[handle]; !ok {
		err = crt.UnknownHandle{}
		return
	}
	delete(registry.tables, handle)

	return
}

// lookup - Returns the registry entry for handle
func lookup(handle Handle) (entry *registryEntry, err error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	entry, ok := registry.tables[handle]
	if !ok {
		err = crt.UnknownHandle{}
	}

	return
}
