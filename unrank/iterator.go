package unrank

import (
	"math"
	"math/big"
)

// Iterator walks an Enumerable sequentially by ascending rank: Next
// yields Nth(0), Nth(1), … lazily, one object per call. It is finite,
// restartable via Reset, and independent of any other iterator over the
// same Enumerable.
//
// An Iterator is a cursor, not a snapshot copy: it holds only the current
// rank, so even enumerations with astronomically large counts iterate in
// O(1) memory beyond the object being produced.
type Iterator[T any] struct {
	src  Enumerable[T]
	next *big.Int
	end  *big.Int
}

// NewIterator starts a fresh iteration over src at rank 0.
func NewIterator[T any](src Enumerable[T]) *Iterator[T] {
	return &Iterator[T]{
		src:  src,
		next: new(big.Int),
		end:  src.Len().Big(),
	}
}

// HasNext reports whether any objects remain.
func (it *Iterator[T]) HasNext() bool {
	return it.next.Cmp(it.end) < 0
}

// Next returns the object at the current rank and advances by one.
// Calling Next on an exhausted iterator returns ErrRankRange.
func (it *Iterator[T]) Next() ([]T, error) {
	if !it.HasNext() {
		return nil, ErrRankRange
	}
	obj, err := it.src.NthBig(it.next)
	if err != nil {
		return nil, err
	}
	it.next.Add(it.next, oneBig)

	return obj, nil
}

// Reset rewinds the iterator to rank 0.
func (it *Iterator[T]) Reset() {
	it.next.SetUint64(0)
}

// oneBig is the shared increment; big.Int arguments are read-only in
// arithmetic, so sharing is safe.
var oneBig = big.NewInt(1)

// ToSlice materializes the whole enumeration in rank order. This is a
// convenience for small enumerations; counts beyond the addressable slice
// range yield ErrTooLarge.
func ToSlice[T any](src Enumerable[T]) ([][]T, error) {
	n, ok := src.Len().Uint64()
	if !ok || n > uint64(math.MaxInt) {
		return nil, ErrTooLarge
	}

	out := make([][]T, 0, int(n))
	for r := uint64(0); r < n; r++ {
		obj, err := src.Nth(r)
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}

	return out, nil
}
