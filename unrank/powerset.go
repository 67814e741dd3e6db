package unrank

import (
	"math/big"
	"slices"

	"github.com/katalvlaran/combinat/count"
)

// PowerSet enumerates every subset of a seed: bit i of the rank selects
// seed[i], so rank 0 is the empty subset and rank 2^N−1 the full seed.
// Each subset preserves ascending seed order.
//
// An empty seed is valid: it has exactly one subset, the empty one.
type PowerSet[T any] struct {
	seed   []T
	length count.Count // 2^len(seed)
}

// NewPowerSet builds a subset enumerator over seed.
func NewPowerSet[T any](seed []T) (*PowerSet[T], error) {
	length, err := count.Pow(2, len(seed))
	if err != nil {
		return nil, err
	}

	return &PowerSet[T]{seed: slices.Clone(seed), length: length}, nil
}

// Len returns 2^len(seed), exact.
func (p *PowerSet[T]) Len() count.Count {
	return p.length
}

// Nth returns the subset whose membership bitmask is rank. The result is
// never nil: the empty subset is an empty slice.
func (p *PowerSet[T]) Nth(rank uint64) ([]T, error) {
	if p.length.CmpUint64(rank) <= 0 {
		return nil, ErrRankRange
	}

	out := make([]T, 0)
	for i := range p.seed {
		if (rank>>uint(i))&1 == 1 { // shifts ≥ 64 read as 0
			out = append(out, p.seed[i])
		}
	}

	return out, nil
}

// NthBig returns the subset for an arbitrary-precision bitmask rank,
// required once the seed holds 64 elements or more.
func (p *PowerSet[T]) NthBig(rank *big.Int) ([]T, error) {
	if _, err := checkBigRank(rank, p.length); err != nil {
		return nil, err
	}

	out := make([]T, 0)
	for i := range p.seed {
		if rank.Bit(i) == 1 {
			out = append(out, p.seed[i])
		}
	}

	return out, nil
}
