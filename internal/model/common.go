package model

import (
	"log/slog"

	"github.com/gostonefire/stringhash/hashfunc"
)

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was deleted
const SlotDeleted uint8 = 2

// Slot - Represents one cell in the slot array
type Slot struct {
	State    uint8
	Identity int64
	Key      []byte
}

// SlotRef - Represents a slot together with its position in the slot array
type SlotRef struct {
	Slot
	SlotNo      int64
	ProbeLength int64
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	Capacity                     int64
	NumberOfSlots                int64
	MaxKeyLength                 int64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewOASlots and contains configuration that affects
// slot processing.
//   - Capacity is the maximum number of live keys the slots will accept
//   - MaxKeyLength is the maximum length of a key, 0 (zero) means no limit
//   - CollisionResolutionTechnique is one of crt.LinearProbing or crt.QuadraticProbing
//   - Seed is the seed for the internal hash algorithms
//   - HashAlgorithm is the hash function(s) to use, nil gives the internal for the technique
//   - Logger receives debug logs, nil discards them
type CRTConf struct {
	Capacity                     int64
	MaxKeyLength                 int64
	CollisionResolutionTechnique int
	Seed                         uint64
	HashAlgorithm                hashfunc.HashAlgorithm
	Logger                       *slog.Logger
}
