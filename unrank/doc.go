// Package unrank enumerates combinatorial objects by rank: it jumps
// straight to the N-th permutation, combination, tuple, subset or product
// without generating any of the objects before it.
//
// 🚀 What is unrank?
//
//	Five enumerable shapes over a seed sequence, one capability:
//	  • Permutation — ordered size-selections, no repetition
//	  • Combination — unordered size-subsets, seed order preserved
//	  • BaseN       — fixed-radix tuples with repetition
//	  • PowerSet    — every subset, rank read as a bitmask
//	  • Product     — Cartesian product, one radix per factor
//
//	Each implements Enumerable[T]: an exact object count Len() and a pure
//	Nth(rank) that decodes rank → object in O(size) time and O(size)
//	space. Ranks and counts stay exact past uint64 (NthBig, count.Count).
//
// ✨ How does it work?
//
//   - Permutation ranks are decoded in the factorial number system: each
//     digit indexes into a shrinking pool of unused seed elements.
//   - Combination ranks go through the combinatorial number system to the
//     unique permutation whose selection is in ascending seed order, then
//     reuse the permutation decoder.
//   - BaseN / PowerSet / Product are positional-numeral decoding with a
//     fixed, binary, or per-factor radix.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinat/unrank"
//
//	c, err := unrank.NewCombination([]int{1, 2, 3, 4}, 2)
//	if err != nil { ... }
//	obj, _ := c.Nth(5)         // [3 4]
//	fmt.Println(c.Len())       // 6
//
//	it := unrank.NewIterator(c) // lazy, restartable, rank order
//	for it.HasNext() {
//	  obj, _ := it.Next()
//	  ...
//	}
//
// Guarantees:
//
//   - Every value is immutable after construction; seeds are snapshotted,
//     so later mutation of the caller's slice is invisible.
//   - Nth is deterministic and total on [0, Len); anything outside is
//     ErrRankRange, checked exactly even for big lengths.
//   - No locks are needed: concurrent Nth/Len calls are safe.
//
// Complexity: construction O(len(seed)); Nth O(size) for every variant
// (O(size) divisions for Permutation/Combination digit decoding).
package unrank
