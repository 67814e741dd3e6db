package unrank

import (
	"math/big"
	"slices"

	"github.com/katalvlaran/combinat/count"
)

// Permutation enumerates the ordered selections of size elements out of a
// seed of N distinct positions, in lexicographic rank order: rank 0 is
// the first size elements of the seed in seed order.
//
// Immutable after construction; the seed is snapshotted.
type Permutation[T any] struct {
	seed   []T
	size   int
	skip   count.Count // (N−size)!, the stride between consecutive ranks
	length count.Count // P(N, size)
}

// NewPermutation builds a k-permutation enumerator over seed.
//
// Errors: ErrEmptySeed for an empty seed, ErrSizeRange for size outside
// [1, len(seed)].
func NewPermutation[T any](seed []T, size int) (*Permutation[T], error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	if size < 1 || size > len(seed) {
		return nil, ErrSizeRange
	}
	length, err := count.Permutation(len(seed), size)
	if err != nil {
		return nil, err
	}
	skip, err := count.Factorial(len(seed) - size)
	if err != nil {
		return nil, err
	}

	return &Permutation[T]{
		seed:   slices.Clone(seed),
		size:   size,
		skip:   skip,
		length: length,
	}, nil
}

// NewPermutationAll builds the full-length permutation enumerator
// (size == len(seed)).
func NewPermutationAll[T any](seed []T) (*Permutation[T], error) {
	return NewPermutation(seed, len(seed))
}

// Len returns P(len(seed), size), exact.
func (p *Permutation[T]) Len() count.Count {
	return p.length
}

// Size returns the selection size.
func (p *Permutation[T]) Size() int {
	return p.size
}

// Nth returns the permutation at the given rank.
func (p *Permutation[T]) Nth(rank uint64) ([]T, error) {
	if p.length.CmpUint64(rank) <= 0 {
		return nil, ErrRankRange
	}

	return p.decode(p.skip.MulUint64(rank))
}

// NthBig returns the permutation at the given arbitrary-precision rank.
func (p *Permutation[T]) NthBig(rank *big.Int) ([]T, error) {
	r, err := checkBigRank(rank, p.length)
	if err != nil {
		return nil, err
	}

	return p.decode(r.Mul(p.skip))
}

// nth decodes a pre-validated rank held as a Count. Used by Combination,
// whose remapped permutation ranks are in range by construction.
func (p *Permutation[T]) nth(rank count.Count) ([]T, error) {
	return p.decode(rank.Mul(p.skip))
}

// decode unranks via the factorial number system.
//
// scaled is rank·(N−size)!: multiplying by the stride discards the
// low-order digit positions that belong to the N−size seed elements a
// partial selection never consumes. The factoradic digits of scaled,
// padded to N positions, then drive a remove-and-collect scan: digit i
// (from position N−1 down to N−size) indexes into the pool of still
// unused elements, which shrinks by one per pick.
func (p *Permutation[T]) decode(scaled count.Count) ([]T, error) {
	n := len(p.seed)
	digits, err := count.Factoradic(scaled, n)
	if err != nil {
		return nil, err // unreachable: scaled < N! for any in-range rank
	}

	var (
		pool   = slices.Clone(p.seed)
		out    = make([]T, 0, p.size)
		offset = n - p.size
	)
	for i := n - 1; i >= offset; i-- {
		d := digits[i]
		out = append(out, pool[d])
		pool = append(pool[:d], pool[d+1:]...)
	}

	return out, nil
}
