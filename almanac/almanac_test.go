package almanac

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maisem/aoc-ranges/rangemap"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func mustParse(t *testing.T, in string) *Almanac {
	t.Helper()
	a, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	return a
}

func TestParse(t *testing.T) {
	a := mustParse(t, sample)
	require.Equal(t, []uint64{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Stages, 7)

	var chain []string
	for _, s := range a.Stages {
		chain = append(chain, s.Source)
	}
	chain = append(chain, a.Stages[len(a.Stages)-1].Target)
	require.Equal(t, []string{"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location"}, chain)

	require.EqualValues(t, 81, a.Stages[0].Transfer(79))
	require.EqualValues(t, 50, a.Stages[0].Transfer(98))
}

func TestLocations(t *testing.T) {
	a := mustParse(t, sample)
	m := a.Condense()
	tests := []struct {
		seed, location uint64
	}{
		{79, 82},
		{14, 43},
		{55, 86},
		{13, 35},
	}
	for _, tt := range tests {
		require.Equal(t, tt.location, m.Map(tt.seed), "seed %d", tt.seed)
	}
	require.Equal(t, []uint64{82, 43, 86, 35}, a.Locations())
	require.EqualValues(t, 35, a.LowestLocation())
}

func TestTrace(t *testing.T) {
	a := mustParse(t, sample)
	require.Equal(t, []uint64{79, 81, 81, 81, 74, 78, 78, 82}, a.Trace(79))
	require.Equal(t, []uint64{14, 14, 53, 49, 42, 42, 43, 43}, a.Trace(14))
}

func TestCondenseMatchesStages(t *testing.T) {
	a := mustParse(t, sample)
	m := a.Condense()
	for v := uint64(0); v < 200; v++ {
		trace := a.Trace(v)
		require.Equal(t, trace[len(trace)-1], m.Map(v), "seed %d", v)
	}
}

func TestRangeLocations(t *testing.T) {
	a := mustParse(t, sample)
	seeds, err := a.SeedRanges()
	require.NoError(t, err)
	require.Equal(t, []rangemap.Range{{Start: 79, End: 92}, {Start: 55, End: 67}}, seeds)

	lowest, err := a.LowestRangeLocation()
	require.NoError(t, err)
	require.EqualValues(t, 46, lowest)

	// Every seed in the ranges lands in one of the location ranges.
	locs, err := a.RangeLocations()
	require.NoError(t, err)
	for _, r := range seeds {
		for v := r.Start; v <= r.End; v++ {
			loc := a.Trace(v)[len(a.Stages)]
			found := false
			for _, l := range locs {
				found = found || l.Contains(loc)
			}
			require.True(t, found, "seed %d at location %d", v, loc)
		}
	}
}

func TestOddSeeds(t *testing.T) {
	a := mustParse(t, strings.Replace(sample, "seeds: 79 14 55 13", "seeds: 79 14 55", 1))
	require.EqualValues(t, 43, a.LowestLocation())
	_, err := a.SeedRanges()
	require.ErrorIs(t, err, ErrOddSeeds)
	_, err = a.LowestRangeLocation()
	require.ErrorIs(t, err, ErrOddSeeds)
}

func TestNoStages(t *testing.T) {
	a := mustParse(t, "seeds: 1 2 3\n")
	require.Empty(t, a.Stages)
	require.True(t, a.Condense().Equal(rangemap.Identity()))
	require.EqualValues(t, 1, a.LowestLocation())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "no seeds",
			in:   "",
			want: ErrNoSeeds,
		},
		{
			name: "empty seeds",
			in:   "seeds:\n",
			want: ErrNoSeeds,
		},
		{
			name: "missing seeds",
			in:   "seed-to-soil map:\n1 2 3\n",
			want: errSyntax,
		},
		{
			name: "bad header",
			in:   "seeds: 1\n\nseed to soil:\n1 2 3\n",
			want: errSyntax,
		},
		{
			name: "short line",
			in:   "seeds: 1\n\nseed-to-soil map:\n1 2\n",
			want: errSyntax,
		},
		{
			name: "not a number",
			in:   "seeds: 1\n\nseed-to-soil map:\n1 x 2\n",
			want: errSyntax,
		},
		{
			name: "zero length",
			in:   "seeds: 1\n\nseed-to-soil map:\n1 2 0\n",
			want: rangemap.ErrEmptyRange,
		},
		{
			name: "overlapping sources",
			in:   "seeds: 1\n\nseed-to-soil map:\n100 0 10\n200 5 10\n",
			want: rangemap.ErrOverlap,
		},
		{
			name: "broken chain",
			in:   "seeds: 1\n\nseed-to-soil map:\n1 2 3\n\nwater-to-light map:\n1 2 3\n",
			want: ErrBrokenChain,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.want)
		})
	}
}
