package unrank

import (
	"math/big"

	"github.com/katalvlaran/combinat/count"
)

// Combination enumerates the unordered size-subsets of a seed in
// lexicographic rank order of their ascending index tuples; every object
// presents its elements in original seed order.
//
// A Combination wraps a Permutation over the same seed and size: each
// combination rank is remapped, via the combinatorial number system, to
// the rank of the one permutation that lists the chosen elements in
// ascending seed order — the canonical representative of the subset.
type Combination[T any] struct {
	perm   *Permutation[T]
	length count.Count // C(N, size)
}

// NewCombination builds a size-subset enumerator over seed.
//
// Errors: ErrEmptySeed for an empty seed, ErrSizeRange for size outside
// [1, len(seed)].
func NewCombination[T any](seed []T, size int) (*Combination[T], error) {
	perm, err := NewPermutation(seed, size)
	if err != nil {
		return nil, err
	}
	length, err := count.Combination(len(seed), size)
	if err != nil {
		return nil, err
	}

	return &Combination[T]{perm: perm, length: length}, nil
}

// Len returns C(len(seed), size), exact.
func (c *Combination[T]) Len() count.Count {
	return c.length
}

// Size returns the subset size.
func (c *Combination[T]) Size() int {
	return c.perm.size
}

// Nth returns the combination at the given rank.
func (c *Combination[T]) Nth(rank uint64) ([]T, error) {
	if c.length.CmpUint64(rank) <= 0 {
		return nil, ErrRankRange
	}

	return c.perm.nth(c.remap(new(big.Int).SetUint64(rank)))
}

// NthBig returns the combination at the given arbitrary-precision rank.
func (c *Combination[T]) NthBig(rank *big.Int) ([]T, error) {
	if _, err := checkBigRank(rank, c.length); err != nil {
		return nil, err
	}

	return c.perm.nth(c.remap(rank))
}

// remap converts a validated combination rank into the permutation rank
// of the subset's canonical (ascending seed order) representative.
//
// Step 1 decodes the rank into its index tuple p₀<p₁<…<p_{k−1} in the
// combinatorial number system. Step 2 re-encodes the tuple as factoradic
// digits: picking ascending positions means pick j finds its element at
// pool index p_j−j, so digit position N−1−j holds p_j−j and all lower
// positions hold 0. The permutation rank is that digit value divided by
// the (N−size)! stride, which divides it exactly because every populated
// place value is a multiple of the stride.
func (c *Combination[T]) remap(rank *big.Int) count.Count {
	var (
		n      = len(c.perm.seed)
		scaled = new(big.Int)
		term   big.Int
	)
	for j, p := range c.indices(rank) {
		f, _ := count.Factorial(n - 1 - j) // n−1−j ≥ 0 for every pick
		term.Mul(big.NewInt(int64(p-j)), f.Big())
		scaled.Add(scaled, &term)
	}

	return count.FromBig(scaled.Quo(scaled, c.perm.skip.Big()))
}

// indices decodes a validated rank into the ascending index tuple of the
// subset, walking candidate first elements and skipping the C(n−x−1, k−j−1)
// subsets that start below each candidate. O(len(seed)) combination
// evaluations overall.
func (c *Combination[T]) indices(rank *big.Int) []int {
	var (
		n   = len(c.perm.seed)
		k   = c.perm.size
		rem = new(big.Int).Set(rank)
		out = make([]int, 0, k)
		x   = 0
	)
	for j := 0; j < k; j++ {
		for {
			// Subsets whose j-th element is x: choose the rest above x.
			cnt, _ := count.Combination(n-x-1, k-j-1)
			below := cnt.Big()
			if rem.Cmp(below) < 0 {
				break
			}
			rem.Sub(rem, below)
			x++
		}
		out = append(out, x)
		x++
	}

	return out
}
