package utils

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// CopyBytes - Returns a copy of a that does not share memory with a.
// A nil or empty slice gives an empty, non nil, slice so that stored empty keys are distinguishable from no key.
func CopyBytes(a []byte) (b []byte) {
	b = make([]byte, len(a))
	_ = copy(b, a)

	return
}

// RoundUp2 - Returns the nearest exponent of 2 that is equal to or bigger than a.
// Values less than 1 gives 1.
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	a--
	a |= a >> 1
	a |= a >> 2
	a |= a >> 4
	a |= a >> 8
	a |= a >> 16
	a |= a >> 32
	a++

	return a
}
