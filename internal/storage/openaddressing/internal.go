package openaddressing

import (
	"github.com/gostonefire/stringhash/crt"
	"github.com/gostonefire/stringhash/internal/model"
	"github.com/gostonefire/stringhash/internal/utils"
)

// probingForGet - Is the Probing Collision Resolution Technique algorithm for getting a slot.
func (Q *OASlots) probingForGet(key []byte) (slotRef model.SlotRef, err error) {
	var slot model.Slot
	var probe, n int64

	hf1Value := Q.hashAlgorithm.HashFunc1(key)

	iMax := Q.numberOfSlots * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < Q.numberOfSlots && probe >= 0 {
			slot = Q.slots[probe]

			switch slot.State {
			case model.SlotEmpty:
				err = crt.NoRecordFound{}
				return

			case model.SlotOccupied:
				if utils.IsEqual(key, slot.Key) {
					slotRef = model.SlotRef{Slot: slot, SlotNo: probe, ProbeLength: n}
					return
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= Q.numberOfSlots {
				err = crt.NoRecordFound{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for getting a slot for set.
// It returns the occupied slot holding key if present, otherwise the first tombstone passed on the way
// or the empty slot that ended the probe sequence.
func (Q *OASlots) probingForSet(key []byte) (slotRef model.SlotRef, err error) {
	var slot model.Slot
	var deletedRef model.SlotRef
	var hasCached bool
	var probe, n int64

	hf1Value := Q.hashAlgorithm.HashFunc1(key)

	iMax := Q.numberOfSlots * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < Q.numberOfSlots && probe >= 0 {
			slot = Q.slots[probe]

			switch slot.State {
			case model.SlotEmpty:
				if hasCached {
					slotRef = deletedRef
				} else {
					slotRef = model.SlotRef{Slot: slot, SlotNo: probe, ProbeLength: n}
				}
				return

			case model.SlotOccupied:
				if utils.IsEqual(key, slot.Key) {
					slotRef = model.SlotRef{Slot: slot, SlotNo: probe, ProbeLength: n}
					return
				}

			case model.SlotDeleted:
				if !hasCached {
					deletedRef = model.SlotRef{Slot: slot, SlotNo: probe, ProbeLength: n}
					hasCached = true
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= Q.numberOfSlots {
				if hasCached {
					slotRef = deletedRef
					return
				}
				err = crt.TableFull{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// updateUtilizationInfo - Updates slot counters given the state transition of one slot
func (Q *OASlots) updateUtilizationInfo(fromState, toState uint8) {
	switch fromState {
	case model.SlotEmpty:
		Q.nEmpty--
	case model.SlotOccupied:
		Q.nOccupied--
	case model.SlotDeleted:
		Q.nDeleted--
	}

	switch toState {
	case model.SlotEmpty:
		Q.nEmpty++
	case model.SlotOccupied:
		Q.nOccupied++
	case model.SlotDeleted:
		Q.nDeleted++
	}
}

// reject - Counts and logs an insert refused since the slots are full
func (Q *OASlots) reject(key []byte) {
	Q.nRejected++
	Q.logger.Debug("insert rejected, table full",
		"key_length", len(key),
		"occupied", Q.nOccupied,
		"capacity", Q.capacity,
		"rejected", Q.nRejected)
}
