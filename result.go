package stringhash

import "math"

// Result - The outcome of a successful Set
//   - Identity is the identity of the key, 1 or higher
//   - Found is true if the key was already present, false if this call inserted it
type Result struct {
	Identity int64
	Found    bool
}

// Code - Returns the result encoded as one integer for callers that can only receive a number.
// A newly inserted key gives +Identity and a found key gives -Identity. Since identities start at 1 the
// value 0 (zero) never encodes a result and is used by SetCode to signal an error.
func (R Result) Code() int64 {
	if R.Found {
		return -R.Identity
	}
	return R.Identity
}

// DecodeResult - Returns the Result encoded by Result.Code.
// The second return value is false if code does not encode a result, which is the case for 0 (zero).
func DecodeResult(code int64) (result Result, ok bool) {
	switch {
	case code == 0 || code == math.MinInt64:
		return
	case code < 0:
		result = Result{Identity: -code, Found: true}
	default:
		result = Result{Identity: code, Found: false}
	}

	ok = true
	return
}
