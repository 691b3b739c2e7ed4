package shrink

import (
	"testing"

	"github.com/npillmayer/segtree"
	"github.com/stretchr/testify/require"
)

func TestShrinkRoundTrip(t *testing.T) {
	keys := []int{40, -7, 12, 40, 3, 12, 1000}
	s := New(keys)
	require.Equal(t, 5, s.Len())
	require.Equal(t, []int{-7, 3, 12, 40, 1000}, s.Keys())
	for _, k := range keys {
		i, err := s.Index(k)
		require.NoError(t, err)
		require.Equal(t, k, s.Key(i))
	}
	require.Equal(t, []int{40, -7, 12, 40, 3, 12, 1000}, keys, "input must not change")
}

func TestShrinkUnknownKeys(t *testing.T) {
	s := New([]string{"delta", "alpha", "charlie"})
	_, err := s.Index("bravo")
	require.ErrorIs(t, err, ErrNotShrinkable)
	require.Equal(t, 1, s.LowerBound("bravo"))
	require.Equal(t, 3, s.LowerBound("echo"))
	_, err = s.Span("alpha", "bravo")
	require.ErrorIs(t, err, ErrNotShrinkable)
	sp, err := s.Span("alpha", "delta")
	require.NoError(t, err)
	lo, hi := sp.Clamp(s.Len())
	require.Equal(t, 0, lo)
	require.Equal(t, 2, hi)
}

func TestWidths(t *testing.T) {
	s := New([]int64{10, 0, 4, 7})
	require.Equal(t, []int64{4, 3, 3}, Widths(s))
	require.Nil(t, Widths(New([]int64{5})))
	sp, err := s.Span(4, 10)
	require.NoError(t, err)
	require.Equal(t, segtree.Between(1, 3), sp)
}
