package unrank_test

import (
	"testing"

	"github.com/katalvlaran/combinat/unrank"
)

// intSeed builds a [0, n) index seed for benchmarks.
func intSeed(n int) []int {
	seed := make([]int, n)
	for i := range seed {
		seed[i] = i
	}

	return seed
}

// BenchmarkPermutation_Nth decodes mid-range ranks of P(20,10).
func BenchmarkPermutation_Nth(b *testing.B) {
	p, err := unrank.NewPermutation(intSeed(20), 10)
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}
	total, _ := p.Len().Uint64()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Nth(uint64(i) % total); err != nil {
			b.Fatalf("Nth failed: %v", err)
		}
	}
}

// BenchmarkCombination_Nth decodes mid-range ranks of C(30,15), which
// exercises the combinatorial-number-system remap on every call.
func BenchmarkCombination_Nth(b *testing.B) {
	c, err := unrank.NewCombination(intSeed(30), 15)
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}
	total, _ := c.Len().Uint64()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Nth(uint64(i) % total); err != nil {
			b.Fatalf("Nth failed: %v", err)
		}
	}
}

// BenchmarkPowerSet_Nth decodes subsets of a 60-element seed on the
// uint64 bitmask path.
func BenchmarkPowerSet_Nth(b *testing.B) {
	p, err := unrank.NewPowerSet(intSeed(60))
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Nth(uint64(i)); err != nil {
			b.Fatalf("Nth failed: %v", err)
		}
	}
}

// BenchmarkBaseN_Nth decodes 32-digit base-10 tuples.
func BenchmarkBaseN_Nth(b *testing.B) {
	bn, err := unrank.NewBaseN(intSeed(10), 32)
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bn.Nth(uint64(i)); err != nil {
			b.Fatalf("Nth failed: %v", err)
		}
	}
}
