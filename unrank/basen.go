package unrank

import (
	"math/big"
	"slices"

	"github.com/katalvlaran/combinat/count"
)

// BaseN enumerates all size-tuples over a seed with repetition allowed:
// the rank is read as a size-digit number in base len(seed), one seed
// element per digit, least-significant digit first in the output.
//
// Unlike Permutation/Combination, size may exceed the seed length —
// repetition makes any tuple length meaningful.
type BaseN[T any] struct {
	seed   []T
	size   int
	length count.Count // len(seed)^size
}

// NewBaseN builds a fixed-radix tuple enumerator over seed.
//
// Errors: ErrEmptySeed for an empty seed, ErrSizeRange for size < 1.
func NewBaseN[T any](seed []T, size int) (*BaseN[T], error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	if size < 1 {
		return nil, ErrSizeRange
	}
	length, err := count.Pow(uint64(len(seed)), size)
	if err != nil {
		return nil, err
	}

	return &BaseN[T]{seed: slices.Clone(seed), size: size, length: length}, nil
}

// Len returns len(seed)^size, exact.
func (b *BaseN[T]) Len() count.Count {
	return b.length
}

// Size returns the tuple length.
func (b *BaseN[T]) Size() int {
	return b.size
}

// Base returns the radix, i.e. the seed length.
func (b *BaseN[T]) Base() int {
	return len(b.seed)
}

// Nth returns the tuple at the given rank: out[i] = seed[digit i] where
// digit i is the i-th least-significant base-N digit of rank.
func (b *BaseN[T]) Nth(rank uint64) ([]T, error) {
	if b.length.CmpUint64(rank) <= 0 {
		return nil, ErrRankRange
	}

	var (
		base = uint64(len(b.seed))
		out  = make([]T, b.size)
	)
	for i := 0; i < b.size; i++ {
		out[i] = b.seed[rank%base]
		rank /= base
	}

	return out, nil
}

// NthBig returns the tuple at the given arbitrary-precision rank.
func (b *BaseN[T]) NthBig(rank *big.Int) ([]T, error) {
	if _, err := checkBigRank(rank, b.length); err != nil {
		return nil, err
	}

	var (
		base = big.NewInt(int64(len(b.seed)))
		rest = new(big.Int).Set(rank)
		rem  big.Int
		out  = make([]T, b.size)
	)
	for i := 0; i < b.size; i++ {
		rest.QuoRem(rest, base, &rem)
		out[i] = b.seed[rem.Int64()]
	}

	return out, nil
}
