package unrank

import (
	"gonum.org/v1/gonum/stat/combin"
)

// Callback-driven streaming over gonum's generators, for seeds whose
// enumeration fits machine range. The generic layer projects gonum's
// index tuples onto the caller's element type; the generators themselves
// never see the elements.

// IterCombinations calls fn with each size-combination of seed, in the
// same lexicographic order as Combination ranks. fn returning false stops
// the iteration early; fn returning an error aborts and surfaces it.
//
// The slice handed to fn is reused between calls — copy it to retain.
func IterCombinations[T any](seed []T, size int, fn func([]T) (bool, error)) error {
	if len(seed) == 0 {
		return ErrEmptySeed
	}
	if size < 1 || size > len(seed) {
		return ErrSizeRange
	}

	var (
		gen = combin.NewCombinationGenerator(len(seed), size)
		idx = make([]int, size)
		buf = make([]T, size)
	)
	for gen.Next() {
		gen.Combination(idx)
		for j, c := range idx {
			buf[j] = seed[c]
		}
		cont, err := fn(buf)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}

// IterPermutations calls fn with each ordered size-selection of seed.
// The generator's visiting order is its own, not Permutation rank order;
// use an Iterator when rank order matters.
//
// The slice handed to fn is reused between calls — copy it to retain.
func IterPermutations[T any](seed []T, size int, fn func([]T) (bool, error)) error {
	if len(seed) == 0 {
		return ErrEmptySeed
	}
	if size < 1 || size > len(seed) {
		return ErrSizeRange
	}

	var (
		gen = combin.NewPermutationGenerator(len(seed), size)
		idx = make([]int, size)
		buf = make([]T, size)
	)
	for gen.Next() {
		gen.Permutation(idx)
		for j, c := range idx {
			buf[j] = seed[c]
		}
		cont, err := fn(buf)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
