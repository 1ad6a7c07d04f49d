// Command day5 solves the seed almanac of Advent of Code 2023, day 5.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc-ranges"
	"github.com/maisem/aoc-ranges/almanac"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) almanac() *almanac.Almanac {
	return aoc.MustGet(almanac.Parse(s.Reader()))
}

/*
want=35

seeds: 79 14 55 13

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
*/
func (s solver) D5p1() any {
	a := s.almanac()
	for _, seed := range a.Seeds {
		s.Debugf("seed %d: %v", seed, a.Trace(seed))
	}
	return aoc.Min(a.Locations()...)
}

// want=46
func (s solver) D5p2() any {
	a := s.almanac()
	seeds := aoc.MustGet(a.SeedRanges())
	lens := make([]uint64, len(seeds))
	for i, r := range seeds {
		lens[i] = r.Len()
	}
	s.Debugf("%d seeds in %d ranges", aoc.Sum(lens...), len(seeds))
	s.Debugf("condensed map:\n%v", a.Condense())
	return aoc.MustGet(a.LowestRangeLocation())
}
