package unrank_test

import (
	"testing"

	"github.com/katalvlaran/combinat/unrank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIterator_RankOrder checks the iterator yields exactly the Nth
// sequence, then reports exhaustion.
func TestIterator_RankOrder(t *testing.T) {
	c, err := unrank.NewCombination([]int{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	total, ok := c.Len().Uint64()
	require.True(t, ok)

	it := unrank.NewIterator[int](c)
	for r := uint64(0); r < total; r++ {
		require.True(t, it.HasNext(), "r=%d", r)
		got, err := it.Next()
		require.NoError(t, err)

		want, err := c.Nth(r)
		require.NoError(t, err)
		assert.Equal(t, want, got, "r=%d", r)
	}

	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, unrank.ErrRankRange)
}

// TestIterator_Reset verifies iteration restarts from rank 0 and replays
// identically.
func TestIterator_Reset(t *testing.T) {
	p, err := unrank.NewPermutationAll([]int{1, 2, 3})
	require.NoError(t, err)

	it := unrank.NewIterator[int](p)
	first, err := it.Next()
	require.NoError(t, err)

	for it.HasNext() {
		_, err = it.Next()
		require.NoError(t, err)
	}

	it.Reset()
	require.True(t, it.HasNext())
	again, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

// TestIterator_Independent verifies two iterators over one enumerable do
// not interfere.
func TestIterator_Independent(t *testing.T) {
	p, err := unrank.NewPowerSet([]int{1, 2, 3})
	require.NoError(t, err)

	a := unrank.NewIterator[int](p)
	b := unrank.NewIterator[int](p)

	_, err = a.Next()
	require.NoError(t, err)
	_, err = a.Next()
	require.NoError(t, err)

	got, err := b.Next()
	require.NoError(t, err)
	assert.Empty(t, got, "second iterator must still be at rank 0")
}

// TestToSlice_MatchesNth materializes a small enumeration in rank order.
func TestToSlice_MatchesNth(t *testing.T) {
	b, err := unrank.NewBaseN([]int{0, 1}, 3)
	require.NoError(t, err)

	all, err := unrank.ToSlice[int](b)
	require.NoError(t, err)
	require.Len(t, all, 8)
	for r := uint64(0); r < 8; r++ {
		want, err := b.Nth(r)
		require.NoError(t, err)
		assert.Equal(t, want, all[r])
	}
}

// TestToSlice_TooLarge refuses enumerations beyond slice range instead of
// truncating them.
func TestToSlice_TooLarge(t *testing.T) {
	seed := make([]int, 70)
	p, err := unrank.NewPowerSet(seed)
	require.NoError(t, err)

	_, err = unrank.ToSlice[int](p)
	assert.ErrorIs(t, err, unrank.ErrTooLarge)
}
