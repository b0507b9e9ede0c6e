package stringhash

import (
	"errors"
	"fmt"

	"github.com/gostonefire/stringhash/crt"
	"github.com/gostonefire/stringhash/internal/model"
)

// Set - Looks up key and returns its identity, or inserts key and returns a freshly assigned identity.
// Identities are assigned from 1 and up in order of first insertion and are never reused.
// The key is copied, the caller may reuse or overwrite the memory behind key as soon as Set returns.
// A failed Set leaves the table unchanged.
//   - key is the key, any byte sequence including the empty one, compared byte for byte
//
// It returns:
//   - result holds the identity and whether the key was found (true) or inserted (false)
//   - err is either of type crt.KeyTooLong, crt.TableFull or a standard error, if something went wrong
func (S *StringHashTable) Set(key []byte) (result Result, err error) {
	slotRef, found, err := S.slotManagement.Set(key)
	if err != nil {
		return
	}

	result = Result{Identity: slotRef.Identity, Found: found}

	return
}

// Check - Returns the identity of key without inserting it.
//   - key is the key to look for
//
// It returns:
//   - identity is the identity of key if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *StringHashTable) Check(key []byte) (identity int64, err error) {
	slotRef, err := S.slotManagement.Get(key)
	if err != nil {
		return
	}

	identity = slotRef.Identity

	return
}

// Delete - Removes key from the table, freeing room for another distinct key.
// The identity that key had is retired, setting key again gives it a new identity.
//   - key is the key to remove
//
// It returns:
//   - identity is the identity key had, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *StringHashTable) Delete(key []byte) (identity int64, err error) {
	slotRef, err := S.slotManagement.Delete(key)
	if err != nil {
		return
	}

	identity = slotRef.Identity

	return
}

// Len - Returns the number of live keys in the table
func (S *StringHashTable) Len() int64 {
	return S.slotManagement.GetUtilization().Occupied
}

// Cap - Returns the maximum number of live keys the table accepts
func (S *StringHashTable) Cap() int64 {
	return S.capacity
}

// Stat - Walks through the entire slot array and produce a TableStat struct with information.
// For big tables this takes time proportional to the number of slots, and each live key is probed once more.
//   - includeProbeDistribution set to true will include a slice with the number of keys per probe length, false will set TableStat.ProbeDistribution to nil.
func (S *StringHashTable) Stat(includeProbeDistribution bool) (tableStat *TableStat, err error) {
	var slotRef model.SlotRef
	var ts TableStat

	sp := S.slotManagement.GetStorageParameters()
	u := S.slotManagement.GetUtilization()

	if includeProbeDistribution {
		ts.ProbeDistribution = make([]int64, 0)
	}

	// Iterate over every slot
	for i := int64(0); i < sp.NumberOfSlots; i++ {
		slotRef, err = S.slotManagement.GetSlot(i)
		if err != nil {
			return
		}
		if slotRef.State != model.SlotOccupied {
			continue
		}

		slotRef, err = S.slotManagement.Get(slotRef.Key)
		if err != nil {
			if errors.Is(err, crt.NoRecordFound{}) {
				err = fmt.Errorf("key in slot %d is not reachable from its home slot", i)
			}
			return
		}

		ts.Records++
		if slotRef.ProbeLength > ts.MaxProbeLength {
			ts.MaxProbeLength = slotRef.ProbeLength
		}
		if includeProbeDistribution {
			for int64(len(ts.ProbeDistribution)) <= slotRef.ProbeLength {
				ts.ProbeDistribution = append(ts.ProbeDistribution, 0)
			}
			ts.ProbeDistribution[slotRef.ProbeLength]++
		}
	}

	ts.Deleted = u.Deleted
	ts.Empty = u.Empty
	ts.Rejected = u.Rejected
	ts.LoadFactor = u.LoadFactor(sp.Capacity)
	ts.SlotLoadFactor = u.SlotLoadFactor()

	tableStat = &ts
	return
}
