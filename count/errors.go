// Package count: sentinel error set.
// All public functions return ONLY these sentinels on invalid input and
// tests match them via errors.Is. Panics are reserved for programmer
// errors (nil or negative *big.Int handed to FromBig).
package count

import "errors"

var (
	// ErrNegative indicates a negative argument where a non-negative
	// integer is required (n, k, exponent, or digit count).
	ErrNegative = errors.New("count: negative argument")

	// ErrWidth indicates the value cannot be represented within the
	// explicitly requested number of factoradic digits.
	ErrWidth = errors.New("count: value exceeds requested digit count")

	// ErrDigit indicates a factoradic digit outside its positional range
	// [0, i] was supplied to FactoradicValue.
	ErrDigit = errors.New("count: factoradic digit out of range")
)
