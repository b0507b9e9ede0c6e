package stringhash

import (
	"log/slog"

	"github.com/gostonefire/stringhash/crt"
	"github.com/gostonefire/stringhash/hashfunc"
	"github.com/gostonefire/stringhash/internal/model"
	"github.com/gostonefire/stringhash/internal/storage"
	"github.com/gostonefire/stringhash/internal/storage/openaddressing"
)

// SlotManagement - Interface for any slot management implementation
type SlotManagement interface {
	Get(key []byte) (slotRef model.SlotRef, err error)
	Set(key []byte) (slotRef model.SlotRef, found bool, err error)
	Delete(key []byte) (slotRef model.SlotRef, err error)
	GetSlot(slotNo int64) (slotRef model.SlotRef, err error)
	GetStorageParameters() (params model.StorageParameters)
	GetUtilization() (utilization storage.Utilization)
}

// Conf - Optional configuration given in the call to NewStringHashTable, the zero value is a valid configuration.
//   - MaxKeyLength is the maximum length of a key, longer keys are rejected with crt.KeyTooLong. 0 (zero) means no limit.
//   - CollisionResolutionTechnique is crt.LinearProbing (default) or crt.QuadraticProbing
//   - Seed is the seed for the internal xxhash based hash algorithms, identities only depend on it through slot placement
//   - HashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//     NewStringHashTable calls SetTableSize on it and the table keeps using it, so every table needs its own instance.
//   - Logger receives debug logs on table creation and on rejected inserts, nil discards them
type Conf struct {
	MaxKeyLength                 int64
	CollisionResolutionTechnique int
	Seed                         uint64
	HashAlgorithm                hashfunc.HashAlgorithm
	Logger                       *slog.Logger
}

// TableInfo - Information structure containing some information about the table created
//   - Capacity is the maximum number of distinct live keys the table accepts
//   - NumberOfSlots is the size of the slot array, at least Capacity
//   - MaxKeyLength is the maximum key length, 0 (zero) if no limit
//   - CollisionResolutionTechnique is the probing technique in use
//   - InternalAlgorithm is true if the internal hash algorithm is used
type TableInfo struct {
	Capacity                     int64
	NumberOfSlots                int64
	MaxKeyLength                 int64
	CollisionResolutionTechnique int
	InternalAlgorithm            bool
}

// TableStat - Statistics on the overall usage of the table and the probe lengths of its keys
//   - Records is the number of live keys stored
//   - Deleted is the number of tombstones
//   - Empty is the number of never used slots
//   - Rejected is the number of inserts refused since the table was full
//   - LoadFactor is Records relative to the capacity
//   - SlotLoadFactor is Records plus Deleted relative to the number of slots
//   - MaxProbeLength is the longest probe sequence needed to reach any live key
//   - ProbeDistribution is the number of live keys per probe length (index), nil unless requested
type TableStat struct {
	Records           int64
	Deleted           int64
	Empty             int64
	Rejected          int64
	LoadFactor        float64
	SlotLoadFactor    float64
	MaxProbeLength    int64
	ProbeDistribution []int64
}

// StringHashTable - The main implementation struct.
// A StringHashTable is not safe for concurrent use, wrap it in a mutex or use it through a Handle.
type StringHashTable struct {
	slotManagement SlotManagement
	capacity       int64
}

// NewStringHashTable - Returns a new fixed capacity table over byte string keys.
// The table never grows, capacity planning is up to the caller. Choose a capacity comfortably above the expected
// number of distinct keys to keep probe sequences short.
//   - capacity is the maximum number of distinct keys the table will hold, it must be higher than 0 (zero) and at most crt.MaxCapacity
//   - conf is optional configuration, use Conf{} for defaults
//
// It returns:
//   - table is a pointer to a StringHashTable struct
//   - tableInfo is a TableInfo struct containing some data regarding the table created.
//   - err is either of type crt.InvalidCapacity, crt.CapacityTooLarge or a standard error, if something went wrong
func NewStringHashTable(capacity int64, conf Conf) (table *StringHashTable, tableInfo TableInfo, err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = crt.InvalidCapacity{}
		return
	}
	if capacity > crt.MaxCapacity {
		err = crt.CapacityTooLarge{}
		return
	}

	technique := conf.CollisionResolutionTechnique
	if technique == 0 {
		technique = crt.LinearProbing
	}

	crtConf := model.CRTConf{
		Capacity:                     capacity,
		MaxKeyLength:                 conf.MaxKeyLength,
		CollisionResolutionTechnique: technique,
		Seed:                         conf.Seed,
		HashAlgorithm:                conf.HashAlgorithm,
		Logger:                       conf.Logger,
	}

	var sm SlotManagement
	sm, err = openaddressing.NewOASlots(crtConf)
	if err != nil {
		return
	}

	// Prepare return data
	table = &StringHashTable{
		slotManagement: sm,
		capacity:       capacity,
	}

	sp := sm.GetStorageParameters()

	tableInfo = TableInfo{
		Capacity:                     sp.Capacity,
		NumberOfSlots:                sp.NumberOfSlots,
		MaxKeyLength:                 sp.MaxKeyLength,
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	return
}
