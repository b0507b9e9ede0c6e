package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that the table is full and can't take more distinct keys
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// InvalidCapacity - Custom error to inform that a table was requested with a capacity that is not positive
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that the requested capacity is invalid
func (E InvalidCapacity) Error() string {
	if E.msg == "" {
		return "capacity must be a positive value higher than 0 (zero)"
	}
	return E.msg
}

// CapacityTooLarge - Custom error to inform that a table was requested with a capacity above MaxCapacity
type CapacityTooLarge struct {
	msg string
}

// Error - Used to notify that the requested capacity is too large
func (E CapacityTooLarge) Error() string {
	if E.msg == "" {
		return "capacity too large"
	}
	return E.msg
}

// KeyTooLong - Custom error to inform that a key exceeds the maximum key length of the table
type KeyTooLong struct {
	msg string
}

// Error - Used to notify that a key is too long
func (E KeyTooLong) Error() string {
	if E.msg == "" {
		return "key too long"
	}
	return E.msg
}

// UnknownHandle - Custom error to inform that a table handle does not refer to a live table
type UnknownHandle struct {
	msg string
}

// Error - Used to notify that the handle is unknown
func (E UnknownHandle) Error() string {
	if E.msg == "" {
		return "unknown table handle"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm is exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}
