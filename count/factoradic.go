// Package count: factorial-number-system conversion.
// The factoradic of v is the digit sequence d[0..w-1], least-significant
// first, with place value i! and digit range [0, i] at position i, such
// that v = Σ d[i]·i!. Position 0 has place value 0! but digit range [0,0],
// so d[0] is always 0 — it is kept so that digit index equals position.
package count

import "math/big"

// Factoradic converts a non-negative value into its factorial-number-system
// digits, least-significant first.
//
// If digits == 0 the minimal width w is inferred: the smallest w with
// w! > v (so the most-significant produced digit is non-zero whenever
// v > 0). If digits > 0, exactly that many positions are produced,
// zero-padding above the minimal width; ErrWidth is returned when v does
// not fit, ErrNegative when digits < 0.
//
// The conversion divides by ascending radixes 2, 3, 4, … recording each
// remainder as a digit — the mirror image of dividing by descending
// factorial bases, producing identical digits without precomputing w!.
//
// Complexity: O(w) divisions; allocation-free for bounded v.
func Factoradic(v Count, digits int) ([]int, error) {
	if digits < 0 {
		return nil, ErrNegative
	}

	var ds []int
	if u, ok := v.Uint64(); ok {
		ds = factoradicUint64(u, digits)
	} else {
		ds = factoradicBig(v.b, digits)
	}
	if digits == 0 {
		return ds, nil
	}
	if len(ds) > digits {
		return nil, ErrWidth
	}
	for len(ds) < digits {
		ds = append(ds, 0)
	}

	return ds, nil
}

// FactoradicValue is the inverse of Factoradic: it folds a
// least-significant-first digit sequence back into the value Σ d[i]·i!.
// Digits outside their positional range [0, i] yield ErrDigit.
func FactoradicValue(digits []int) (Count, error) {
	var (
		total = new(big.Int)
		place = big.NewInt(1) // i! at position i
		term  big.Int
	)
	for i, d := range digits {
		if d < 0 || d > i {
			return Count{}, ErrDigit
		}
		if i > 0 {
			place.Mul(place, big.NewInt(int64(i)))
		}
		if d != 0 {
			term.Mul(place, big.NewInt(int64(d)))
			total.Add(total, &term)
		}
	}

	return fromBigOwned(total), nil
}

// factoradicUint64 produces the minimal digit sequence of a bounded value,
// capped at hint positions when hint > 0 saves the trailing-zero append.
func factoradicUint64(v uint64, hint int) []int {
	ds := make([]int, 1, max(hint, 8)) // ds[0] is always 0
	for radix := uint64(2); v > 0; radix++ {
		ds = append(ds, int(v%radix))
		v /= radix
	}

	return ds
}

// factoradicBig mirrors factoradicUint64 for arbitrary-precision values.
func factoradicBig(v *big.Int, hint int) []int {
	var (
		ds    = make([]int, 1, max(hint, 24))
		rest  = new(big.Int).Set(v)
		radix = big.NewInt(2)
		rem   big.Int
		one   = big.NewInt(1)
	)
	for rest.Sign() > 0 {
		rest.QuoRem(rest, radix, &rem)
		ds = append(ds, int(rem.Int64()))
		radix.Add(radix, one)
	}

	return ds
}
