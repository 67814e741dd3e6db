package unrank

import (
	"math/big"
	"slices"

	"github.com/katalvlaran/combinat/count"
)

// Product enumerates the Cartesian product of one or more factor
// sequences in mixed radix: the first factor varies slowest and the last
// factor fastest, so the last factor is the least-significant digit.
//
// Each object holds one element per factor, in factor order.
type Product[T any] struct {
	factors [][]T
	length  count.Count // Π len(factor)
}

// NewProduct builds a Cartesian-product enumerator over the given
// factors. At least one factor is required, and every factor must be
// non-empty (an empty factor would make the whole product empty);
// ErrEmptySeed covers both.
func NewProduct[T any](factors ...[]T) (*Product[T], error) {
	if len(factors) == 0 {
		return nil, ErrEmptySeed
	}

	var (
		owned  = make([][]T, len(factors))
		length = count.FromUint64(1)
	)
	for i, f := range factors {
		if len(f) == 0 {
			return nil, ErrEmptySeed
		}
		owned[i] = slices.Clone(f)
		length = length.MulUint64(uint64(len(f)))
	}

	return &Product[T]{factors: owned, length: length}, nil
}

// Len returns the product of the factor sizes, exact.
func (p *Product[T]) Len() count.Count {
	return p.length
}

// Factors returns the number of factor sequences.
func (p *Product[T]) Factors() int {
	return len(p.factors)
}

// Nth returns the tuple at the given rank, decoding digits from the last
// factor (fastest) to the first (slowest).
func (p *Product[T]) Nth(rank uint64) ([]T, error) {
	if p.length.CmpUint64(rank) <= 0 {
		return nil, ErrRankRange
	}

	out := make([]T, len(p.factors))
	for i := len(p.factors) - 1; i >= 0; i-- {
		radix := uint64(len(p.factors[i]))
		out[i] = p.factors[i][rank%radix]
		rank /= radix
	}

	return out, nil
}

// NthBig returns the tuple at the given arbitrary-precision rank.
func (p *Product[T]) NthBig(rank *big.Int) ([]T, error) {
	if _, err := checkBigRank(rank, p.length); err != nil {
		return nil, err
	}

	var (
		rest  = new(big.Int).Set(rank)
		radix big.Int
		rem   big.Int
		out   = make([]T, len(p.factors))
	)
	for i := len(p.factors) - 1; i >= 0; i-- {
		radix.SetInt64(int64(len(p.factors[i])))
		rest.QuoRem(rest, &radix, &rem)
		out[i] = p.factors[i][rem.Int64()]
	}

	return out, nil
}
