package rangemap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	r, err := NewRange(50, 48)
	require.NoError(t, err)
	require.Equal(t, Range{Start: 50, End: 97}, r)
	require.EqualValues(t, 48, r.Len())

	_, err = NewRange(50, 0)
	require.ErrorIs(t, err, ErrEmptyRange)

	_, err = NewRange(math.MaxUint64, 2)
	require.ErrorIs(t, err, ErrOverflow)

	r, err = NewRange(math.MaxUint64, 1)
	require.NoError(t, err)
	require.Equal(t, Range{Start: math.MaxUint64, End: math.MaxUint64}, r)
}

func TestRangePredicates(t *testing.T) {
	tests := []struct {
		a, b     Range
		overlap  bool
		adjacent bool
	}{
		{a: Range{0, 49}, b: Range{50, 97}, overlap: false, adjacent: true},
		{a: Range{0, 50}, b: Range{50, 97}, overlap: true, adjacent: false},
		{a: Range{0, 10}, b: Range{12, 20}, overlap: false, adjacent: false},
		{a: Range{5, 5}, b: Range{0, 10}, overlap: true, adjacent: false},
		{a: Range{50, 97}, b: Range{0, 49}, overlap: false, adjacent: false},
		{a: Full, b: Range{7, 7}, overlap: true, adjacent: false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.overlap, tt.a.Overlaps(tt.b), "%v overlaps %v", tt.a, tt.b)
		require.Equal(t, tt.overlap, tt.b.Overlaps(tt.a), "%v overlaps %v", tt.b, tt.a)
		require.Equal(t, !tt.overlap, tt.a.Disjoint(tt.b), "%v disjoint %v", tt.a, tt.b)
		require.Equal(t, tt.adjacent, tt.a.Adjacent(tt.b), "%v adjacent %v", tt.a, tt.b)
	}
	require.False(t, Range{10, math.MaxUint64}.Adjacent(Range{0, 0}))
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: 50, End: 97}
	require.True(t, r.Contains(50))
	require.True(t, r.Contains(97))
	require.False(t, r.Contains(49))
	require.False(t, r.Contains(98))
	require.True(t, r.ContainsRange(Range{60, 70}))
	require.True(t, r.ContainsRange(r))
	require.False(t, r.ContainsRange(Range{40, 60}))
	require.True(t, Full.ContainsRange(r))
}

func TestRangeCompare(t *testing.T) {
	a, b := Range{0, 49}, Range{50, 97}
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}

func TestRangeJoin(t *testing.T) {
	require.Equal(t, Range{0, 97}, Range{0, 49}.Join(Range{50, 97}))
	require.Panics(t, func() { Range{0, 48}.Join(Range{50, 97}) })
}

func TestTransfer(t *testing.T) {
	require.EqualValues(t, 52, Transfer(50, Range{50, 97}, Range{52, 99}))
	require.EqualValues(t, 99, Transfer(97, Range{50, 97}, Range{52, 99}))
	require.EqualValues(t, uint64(math.MaxUint64-10), Transfer(math.MaxUint64, Range{10, math.MaxUint64}, Range{0, math.MaxUint64 - 10}))
	require.Panics(t, func() { Transfer(98, Range{50, 97}, Range{52, 99}) })
}

func TestFullLen(t *testing.T) {
	require.EqualValues(t, uint64(math.MaxUint64), Full.Span())
	require.EqualValues(t, 0, Full.Len())
	require.Equal(t, "[0, 18446744073709551615]", Full.String())
}
