package unrank_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/combinat/unrank"
)

// ExampleNewCombination jumps straight to arbitrary ranks of the
// 2-subsets of {1,2,3,4} — no enumeration of the ranks in between.
func ExampleNewCombination() {
	c, _ := unrank.NewCombination([]int{1, 2, 3, 4}, 2)

	first, _ := c.Nth(0)
	last, _ := c.Nth(5)
	fmt.Println(c.Len())
	fmt.Println(first)
	fmt.Println(last)
	// Output:
	// 6
	// [1 2]
	// [3 4]
}

// ExampleNewPowerSet materializes a tiny power set in rank order: the
// rank is the membership bitmask.
func ExampleNewPowerSet() {
	p, _ := unrank.NewPowerSet([]int{1, 2})

	all, _ := unrank.ToSlice[int](p)
	fmt.Println(all)
	// Output:
	// [[] [1] [2] [1 2]]
}

// ExampleNewPermutation unranks within a permutation space too large to
// ever enumerate: 21! objects, addressed directly by big rank.
func ExampleNewPermutation() {
	seed := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
	p, _ := unrank.NewPermutationAll(seed)

	last := new(big.Int).Sub(p.Len().Big(), big.NewInt(1))
	obj, _ := p.NthBig(last)
	fmt.Println(p.Len())
	fmt.Println(obj[:5])
	// Output:
	// 51090942171709440000
	// [20 19 18 17 16]
}

// ExampleNewIterator walks a Cartesian product lazily, first factor
// slowest.
func ExampleNewIterator() {
	p, _ := unrank.NewProduct([]string{"a", "b"}, []string{"x", "y"})

	it := unrank.NewIterator[string](p)
	for it.HasNext() {
		obj, _ := it.Next()
		fmt.Println(obj)
	}
	// Output:
	// [a x]
	// [a y]
	// [b x]
	// [b y]
}
