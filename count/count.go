// Package count: the Count tagged numeral.
// Count is either a bounded uint64 or an arbitrary-precision big.Int,
// chosen transparently per value. The representation invariant is strict:
// the big form is used if and only if the value does not fit in uint64,
// so two equal values always share one representation.
package count

import (
	"math/big"
	"math/bits"
	"strconv"
)

// Count is an exact, immutable, non-negative integer.
//
// The zero value is a valid Count equal to 0. Construct via FromUint64 or
// FromBig; never mutate a Count after construction. A Count holding a big
// value owns its big.Int exclusively — accessors hand out copies.
type Count struct {
	u uint64
	b *big.Int // nil while the value fits in uint64
}

// FromUint64 returns the Count for a machine integer.
func FromUint64(v uint64) Count {
	return Count{u: v}
}

// FromBig returns the Count for an arbitrary-precision integer,
// downcasting to the bounded representation iff the value fits in uint64.
// The input is copied, never retained.
//
// Counts are non-negative by definition: a nil or negative input is a
// programmer error and panics.
func FromBig(v *big.Int) Count {
	if v == nil {
		panic("count: FromBig(nil)")
	}
	if v.Sign() < 0 {
		panic("count: FromBig(negative)")
	}
	if v.IsUint64() {
		return Count{u: v.Uint64()}
	}

	return Count{b: new(big.Int).Set(v)}
}

// fromBigOwned normalizes a big.Int the caller will not use again,
// avoiding the defensive copy of FromBig.
func fromBigOwned(v *big.Int) Count {
	if v.IsUint64() {
		return Count{u: v.Uint64()}
	}

	return Count{b: v}
}

// IsBig reports whether the value exceeds the uint64 range.
func (c Count) IsBig() bool {
	return c.b != nil
}

// IsZero reports whether the value is 0.
func (c Count) IsZero() bool {
	return c.b == nil && c.u == 0
}

// Uint64 returns the bounded representation and true iff the value fits
// in uint64; otherwise it returns (0, false).
func (c Count) Uint64() (uint64, bool) {
	if c.b != nil {
		return 0, false
	}

	return c.u, true
}

// Big returns the value as a freshly allocated big.Int, regardless of the
// internal representation. The caller owns the result.
func (c Count) Big() *big.Int {
	if c.b != nil {
		return new(big.Int).Set(c.b)
	}

	return new(big.Int).SetUint64(c.u)
}

// Cmp compares c against o, returning -1, 0 or +1.
// The representation invariant makes cross-representation comparison
// trivial: a big Count always exceeds a bounded one.
func (c Count) Cmp(o Count) int {
	switch {
	case c.b == nil && o.b == nil:
		switch {
		case c.u < o.u:
			return -1
		case c.u > o.u:
			return 1
		default:
			return 0
		}
	case c.b == nil:
		return -1
	case o.b == nil:
		return 1
	default:
		return c.b.Cmp(o.b)
	}
}

// CmpUint64 compares c against a machine integer.
func (c Count) CmpUint64(v uint64) int {
	if c.b != nil {
		return 1
	}
	switch {
	case c.u < v:
		return -1
	case c.u > v:
		return 1
	default:
		return 0
	}
}

// Equal reports whether c and o hold the same value.
func (c Count) Equal(o Count) bool {
	return c.Cmp(o) == 0
}

// MulUint64 returns c·m, promoting to big.Int on uint64 overflow and
// downcasting when the product fits.
func (c Count) MulUint64(m uint64) Count {
	if c.b == nil {
		hi, lo := bits.Mul64(c.u, m)
		if hi == 0 {
			return Count{u: lo}
		}

		return fromBigOwned(mulBig(new(big.Int).SetUint64(c.u), m))
	}

	return fromBigOwned(mulBig(new(big.Int).Set(c.b), m))
}

// Mul returns c·o under the same promotion/downcast rule as MulUint64.
func (c Count) Mul(o Count) Count {
	if o.b == nil {
		return c.MulUint64(o.u)
	}

	return fromBigOwned(new(big.Int).Mul(c.Big(), o.b))
}

// String renders the exact decimal value.
func (c Count) String() string {
	if c.b != nil {
		return c.b.String()
	}

	return strconv.FormatUint(c.u, 10)
}

// mulBig multiplies an owned big.Int by a machine integer in place.
func mulBig(v *big.Int, m uint64) *big.Int {
	return v.Mul(v, new(big.Int).SetUint64(m))
}

// Pow returns baseᵉˣᵖ as an exact Count. Pow(0, 0) == 1 by the usual
// combinatorial convention. A negative exponent yields ErrNegative.
//
// Complexity: O(exp) bounded multiplications (exp is an object size in
// this library, not a user-scale number).
func Pow(base uint64, exp int) (Count, error) {
	if exp < 0 {
		return Count{}, ErrNegative
	}
	acc := FromUint64(1)
	for i := 0; i < exp; i++ {
		acc = acc.MulUint64(base)
	}

	return acc, nil
}
