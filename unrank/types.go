// Package unrank: shared capability interface and sentinel errors.
// Every enumerable variant returns ONLY these sentinels on invalid input;
// tests match them via errors.Is. Constructors validate eagerly so that a
// successfully built value can never fail except on an out-of-range rank.
package unrank

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/combinat/count"
)

// Sentinel errors for enumerable construction and rank decoding.
var (
	// ErrEmptySeed indicates a seed (or product factor) with no elements
	// where at least one is required.
	ErrEmptySeed = errors.New("unrank: seed must contain at least one element")

	// ErrSizeRange indicates a selection size outside its valid range
	// ([1, len(seed)] for Permutation/Combination, ≥1 for BaseN).
	ErrSizeRange = errors.New("unrank: size out of range")

	// ErrRankRange indicates a rank outside [0, Len).
	ErrRankRange = errors.New("unrank: rank outside [0, length)")

	// ErrNilRank indicates a nil *big.Int rank.
	ErrNilRank = errors.New("unrank: nil rank")

	// ErrTooLarge indicates an enumeration whose object count exceeds
	// what a materialized slice can hold.
	ErrTooLarge = errors.New("unrank: enumeration too large to materialize")
)

// Enumerable is the one capability shared by all five variants: an exact
// object count and direct access to the object at a given rank.
//
// Nth is the uint64 fast path; NthBig accepts ranks beyond machine range.
// Both are pure, deterministic, and total on [0, Len); both return
// ErrRankRange outside it. Implementations are immutable and safe for
// concurrent use.
type Enumerable[T any] interface {
	// Len returns the exact number of distinct objects, bounded when it
	// fits uint64 and arbitrary-precision otherwise.
	Len() count.Count

	// Nth returns the object at the given rank.
	Nth(rank uint64) ([]T, error)

	// NthBig returns the object at the given arbitrary-precision rank.
	// The rank is not retained and not mutated.
	NthBig(rank *big.Int) ([]T, error)
}

// checkBigRank validates a big rank against a length, returning the rank
// as a Count for decoding.
func checkBigRank(rank *big.Int, length count.Count) (count.Count, error) {
	if rank == nil {
		return count.Count{}, ErrNilRank
	}
	if rank.Sign() < 0 {
		return count.Count{}, ErrRankRange
	}
	r := count.FromBig(rank)
	if length.Cmp(r) <= 0 {
		return count.Count{}, ErrRankRange
	}

	return r, nil
}
