package storage

// Utilization - Represents the current use of a slot array
//   - Empty is the number of slots that have never been in use
//   - Occupied is the number of slots holding a live key
//   - Deleted is the number of slots holding a tombstone
//   - Rejected is the number of inserts refused since the table was full
type Utilization struct {
	Empty    int64
	Occupied int64
	Deleted  int64
	Rejected int64
}

// LoadFactor - Returns the ratio of occupied slots to the capacity
func (U Utilization) LoadFactor(capacity int64) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(U.Occupied) / float64(capacity)
}

// SlotLoadFactor - Returns the ratio of slots not empty (occupied or deleted) to the total number of slots.
// It is the figure that governs probe chain lengths in open addressing.
func (U Utilization) SlotLoadFactor() float64 {
	total := U.Empty + U.Occupied + U.Deleted
	if total == 0 {
		return 0
	}
	return float64(U.Occupied+U.Deleted) / float64(total)
}
