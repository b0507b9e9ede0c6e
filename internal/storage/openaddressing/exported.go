package openaddressing

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gostonefire/stringhash/crt"
	"github.com/gostonefire/stringhash/hashfunc"
	"github.com/gostonefire/stringhash/internal/hash"
	"github.com/gostonefire/stringhash/internal/model"
	"github.com/gostonefire/stringhash/internal/storage"
	"github.com/gostonefire/stringhash/internal/utils"
)

// OASlots - Represents an in memory implementation of the Open Addressing Collision Resolution Techniques.
// It uses one array of slots where each slot holds at most one key. In case of a collision, it probes through
// the slot array using a collision resolution algorithm, looking for an empty slot, and assigns the free slot to the key.
// Once capacity live keys are held the slots will accept no more new keys.
type OASlots struct {
	slots                        []model.Slot
	capacity                     int64
	numberOfSlots                int64
	maxKeyLength                 int64
	hashAlgorithm                hashfunc.HashAlgorithm
	internalAlgorithm            bool
	CollisionResolutionTechnique int
	nextIdentity                 int64
	nEmpty                       int64
	nOccupied                    int64
	nDeleted                     int64
	nRejected                    int64
	logger                       *slog.Logger
}

// NewOASlots - Returns a pointer to a new instance of the Open Addressing slots implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting slot processing
//
// It returns:
//   - oaSlots which is a pointer to the created instance
//   - err which is either of type crt.InvalidCapacity, crt.CapacityTooLarge or a standard Go type of error
func NewOASlots(crtConf model.CRTConf) (oaSlots *OASlots, err error) {
	if crtConf.Capacity <= 0 {
		err = crt.InvalidCapacity{}
		return
	}
	if crtConf.Capacity > crt.MaxCapacity {
		err = fmt.Errorf("capacity %d is above the maximum of %d: %w", crtConf.Capacity, crt.MaxCapacity, crt.CapacityTooLarge{})
		return
	}
	if crtConf.MaxKeyLength < 0 {
		err = fmt.Errorf("max key length must be 0 (zero) for no limit or a positive value")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	var ha hashfunc.HashAlgorithm
	if crtConf.HashAlgorithm == nil {
		switch crtConf.CollisionResolutionTechnique {
		case crt.LinearProbing:
			ha = hash.NewLinearProbingHashAlgorithm(crtConf.Capacity, crtConf.Seed)
		case crt.QuadraticProbing:
			ha = hash.NewQuadraticProbingHashAlgorithm(crtConf.Capacity, crtConf.Seed)
		default:
			err = fmt.Errorf("unknown collision resolution technique %d", crtConf.CollisionResolutionTechnique)
			return
		}
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.Capacity)
		ha = crtConf.HashAlgorithm
	}

	numberOfSlots := ha.GetTableSize()
	if numberOfSlots < crtConf.Capacity {
		err = fmt.Errorf("hash algorithm table size %d is less than capacity %d", numberOfSlots, crtConf.Capacity)
		return
	}
	if numberOfSlots > crt.MaxCapacity {
		err = fmt.Errorf("hash algorithm table size %d is above the maximum of %d: %w", numberOfSlots, crt.MaxCapacity, crt.CapacityTooLarge{})
		return
	}

	logger := crtConf.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	oaSlots = &OASlots{
		slots:                        make([]model.Slot, numberOfSlots),
		capacity:                     crtConf.Capacity,
		numberOfSlots:                numberOfSlots,
		maxKeyLength:                 crtConf.MaxKeyLength,
		hashAlgorithm:                ha,
		internalAlgorithm:            internalAlg,
		CollisionResolutionTechnique: crtConf.CollisionResolutionTechnique,
		nextIdentity:                 1,
		nEmpty:                       numberOfSlots,
		logger:                       logger,
	}

	oaSlots.logger.Debug("slots allocated",
		"capacity", oaSlots.capacity,
		"slots", oaSlots.numberOfSlots,
		"crt", crt.Name(oaSlots.CollisionResolutionTechnique),
		"internal", internalAlg)

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OASlots
func (Q *OASlots) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: Q.CollisionResolutionTechnique,
		Capacity:                     Q.capacity,
		NumberOfSlots:                Q.numberOfSlots,
		MaxKeyLength:                 Q.maxKeyLength,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// GetUtilization - Returns current slot usage counters
func (Q *OASlots) GetUtilization() (utilization storage.Utilization) {
	utilization = storage.Utilization{
		Empty:    Q.nEmpty,
		Occupied: Q.nOccupied,
		Deleted:  Q.nDeleted,
		Rejected: Q.nRejected,
	}

	return
}

// GetSlot - Returns the slot at a given slot number.
// The key of the returned slot is shared with the slot array and must not be modified.
//   - slotNo is the position in the slot array, between 0 and number of slots - 1
func (Q *OASlots) GetSlot(slotNo int64) (slotRef model.SlotRef, err error) {
	if slotNo < 0 || slotNo >= Q.numberOfSlots {
		err = fmt.Errorf("slot number %d outside permitted range", slotNo)
		return
	}

	slotRef = model.SlotRef{Slot: Q.slots[slotNo], SlotNo: slotNo}

	return
}

// Get - Gets the occupied slot that holds the given key.
//   - key is the key to look for, any length including zero
//
// It returns:
//   - slotRef is the matching slot if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or crt.ProbingAlgorithm
func (Q *OASlots) Get(key []byte) (slotRef model.SlotRef, err error) {
	if Q.maxKeyLength > 0 && int64(len(key)) > Q.maxKeyLength {
		err = crt.NoRecordFound{}
		return
	}

	slotRef, err = Q.probingForGet(key)

	return
}

// Set - Returns the slot already holding key, or stores key in a free slot and assigns it the next identity.
// The key is copied, the caller may reuse the memory behind key as soon as Set returns.
// Nothing is changed if an error is returned.
//   - key is the key to insert or find, any length including zero up to the max key length
//
// It returns:
//   - slotRef is the slot holding the key
//   - found is true if the key was already present and false if it was inserted by this call
//   - err is either of type crt.KeyTooLong, crt.TableFull or crt.ProbingAlgorithm
func (Q *OASlots) Set(key []byte) (slotRef model.SlotRef, found bool, err error) {
	if Q.maxKeyLength > 0 && int64(len(key)) > Q.maxKeyLength {
		err = crt.KeyTooLong{}
		return
	}

	slotRef, err = Q.probingForSet(key)
	if err != nil {
		if errors.Is(err, crt.TableFull{}) {
			Q.reject(key)
		}
		return
	}

	if slotRef.State == model.SlotOccupied {
		found = true
		return
	}

	if Q.nOccupied >= Q.capacity {
		slotRef = model.SlotRef{}
		err = crt.TableFull{}
		Q.reject(key)
		return
	}

	fromState := slotRef.State
	slotRef.State = model.SlotOccupied
	slotRef.Key = utils.CopyBytes(key)
	slotRef.Identity = Q.nextIdentity
	Q.nextIdentity++

	Q.slots[slotRef.SlotNo] = slotRef.Slot
	Q.updateUtilizationInfo(fromState, slotRef.State)

	return
}

// Delete - Deletes the slot holding key by turning it into a tombstone.
// The identity of the deleted key is retired and will never be handed out again.
//   - key is the key to delete
//
// It returns:
//   - slotRef is the slot as it was before deletion
//   - err is either of type crt.NoRecordFound or crt.ProbingAlgorithm
func (Q *OASlots) Delete(key []byte) (slotRef model.SlotRef, err error) {
	slotRef, err = Q.Get(key)
	if err != nil {
		return
	}

	Q.slots[slotRef.SlotNo] = model.Slot{State: model.SlotDeleted}
	Q.updateUtilizationInfo(slotRef.State, model.SlotDeleted)

	return
}
