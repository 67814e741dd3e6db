// Package count: exact counting primitives.
// Every function runs a uint64 accumulator until the first overflow,
// detected via math/bits, then finishes in math/big and downcasts the
// final value iff it fits. The accumulators are monotone, so a promoted
// permutation product can never shrink back — but a promoted combination
// can (intermediate numerators overflow while the quotient fits), which
// is why the downcast happens uniformly at the end.
package count

import (
	"math/big"
	"math/bits"
)

// Permutation returns the number of ordered selections of k elements out
// of n distinct elements: n·(n−1)·…·(n−k+1).
//
// Conventions:
//   - k == 0 yields 1 (the empty selection).
//   - k > n yields 0, guarded explicitly rather than left to a zero factor.
//   - negative n or k yields ErrNegative.
//
// Complexity: O(k) multiplications, allocation-free while the running
// product fits in uint64.
func Permutation(n, k int) (Count, error) {
	if n < 0 || k < 0 {
		return Count{}, ErrNegative
	}
	if k > n {
		return FromUint64(0), nil
	}

	var (
		acc  = uint64(1)
		wide *big.Int
	)
	for i := 0; i < k; i++ {
		f := uint64(n - i)
		if wide == nil {
			hi, lo := bits.Mul64(acc, f)
			if hi == 0 {
				acc = lo
				continue
			}
			// First overflow: carry the bounded product into big form.
			wide = newBig(acc)
		}
		mulBig(wide, f)
	}
	if wide == nil {
		return FromUint64(acc), nil
	}

	return fromBigOwned(wide), nil
}

// Combination returns the number of unordered selections of k elements
// out of n distinct elements: P(n,k) / k!, computed exactly.
//
// The loop maintains acc == C(n−k+i, i) after step i, so every division
// is exact (a product of i consecutive integers is divisible by i!).
// Same conventions as Permutation; additionally C(n,k) == C(n,n−k) is
// exploited to halve the loop.
func Combination(n, k int) (Count, error) {
	if n < 0 || k < 0 {
		return Count{}, ErrNegative
	}
	if k > n {
		return FromUint64(0), nil
	}
	if n-k < k {
		k = n - k
	}

	var (
		acc  = uint64(1)
		wide *big.Int
	)
	for i := 1; i <= k; i++ {
		f := uint64(n - k + i)
		if wide == nil {
			hi, lo := bits.Mul64(acc, f)
			if hi == 0 {
				acc = lo / uint64(i) // exact by construction
				continue
			}
			wide = newBig(acc)
		}
		mulBig(wide, f)
		divBig(wide, uint64(i)) // exact by construction
	}
	if wide == nil {
		return FromUint64(acc), nil
	}
	// Intermediate overflow does not imply a big result here: downcast.
	return fromBigOwned(wide), nil
}

// Factorial returns n! — the permutation count of n elements over all n
// positions. Factorial(0) == 1.
func Factorial(n int) (Count, error) {
	return Permutation(n, n)
}

// newBig allocates a big.Int holding a machine integer.
func newBig(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

// divBig divides an owned big.Int by a machine integer in place.
// The division must be exact; callers guarantee divisibility.
func divBig(v *big.Int, d uint64) *big.Int {
	return v.Quo(v, new(big.Int).SetUint64(d))
}
