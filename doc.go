// Package combinat is your in-memory playground for exact combinatorics —
// counting enormous object spaces precisely and jumping straight to the
// N-th object by rank, without generating anything in between.
//
// 🚀 What is combinat?
//
//	A small, pure-Go library that brings together:
//		• Exact counting: permutations, combinations, factorials, powers —
//		  bounded uint64 while it fits, arbitrary precision when it doesn't
//		• Factoradic conversion: the factorial number system behind
//		  permutation rank decoding
//		• Unranking: Permutation, Combination, BaseN, PowerSet and
//		  Cartesian Product, each mapping rank → object in O(size)
//		• Lazy iteration: restartable rank-order iterators and streaming
//		  callbacks over gonum's generators
//
// ✨ Why choose combinat?
//
//   - Exact by construction — no floating point, no silent overflow; 21!
//     is just another answer
//   - Direct access — the quadrillionth permutation costs the same as the
//     first
//   - Immutable values — seeds are snapshotted, every object is safe to
//     share across goroutines without locks
//   - Minimal API — one capability (Len + Nth) across all five shapes
//
// Everything is organized under two subpackages:
//
//	count/  — exact arithmetic core: Permutation, Combination, Factorial,
//	          Pow, Factoradic and the tagged Count numeral
//	unrank/ — the five enumerable shapes, rank decoding, iterators
//
// Quick example:
//
//	c, _ := unrank.NewCombination([]int{1, 2, 3, 4}, 2)
//	obj, _ := c.Nth(5) // [3 4] — decoded directly, nothing enumerated
//
// See each subpackage's doc.go for algorithms, complexity and examples.
package combinat
