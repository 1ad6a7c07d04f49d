// Package almanac solves the seed almanac: a list of seeds and a chain of
// category-to-category maps that together send each seed to a location.
package almanac

import (
	"errors"
	"fmt"
	"slices"

	"github.com/maisem/aoc-ranges/rangemap"
)

var (
	ErrNoSeeds     = errors.New("almanac: no seeds")
	ErrOddSeeds    = errors.New("almanac: seed ranges need an even number of values")
	ErrBrokenChain = errors.New("almanac: stages do not chain")
)

// Stage maps the numbers of one category onto the next.
type Stage struct {
	Source, Target string
	Map            rangemap.RangeMap
}

// Transfer returns the Target number for the Source number v.
func (s Stage) Transfer(v uint64) uint64 {
	return s.Map.Map(v)
}

type Almanac struct {
	Seeds  []uint64
	Stages []Stage
}

// validate checks that every stage picks up where the previous one left
// off.
func (a *Almanac) validate() error {
	if len(a.Seeds) == 0 {
		return ErrNoSeeds
	}
	for i := 1; i < len(a.Stages); i++ {
		prev, cur := a.Stages[i-1], a.Stages[i]
		if prev.Target != cur.Source {
			return fmt.Errorf("%w: %s-to-%s followed by %s-to-%s", ErrBrokenChain, prev.Source, prev.Target, cur.Source, cur.Target)
		}
	}
	return nil
}

// Condense composes every stage into one map from the first category to
// the last.
func (a *Almanac) Condense() rangemap.RangeMap {
	maps := make([]rangemap.RangeMap, len(a.Stages))
	for i, s := range a.Stages {
		maps[i] = s.Map
	}
	return rangemap.Compose(maps...)
}

// Trace returns the number of seed in every category, starting with the
// seed itself.
func (a *Almanac) Trace(seed uint64) []uint64 {
	out := []uint64{seed}
	for _, s := range a.Stages {
		seed = s.Transfer(seed)
		out = append(out, seed)
	}
	return out
}

// Locations returns the location of each seed.
func (a *Almanac) Locations() []uint64 {
	m := a.Condense()
	out := make([]uint64, len(a.Seeds))
	for i, s := range a.Seeds {
		out[i] = m.Map(s)
	}
	return out
}

// LowestLocation returns the lowest location of any seed.
func (a *Almanac) LowestLocation() uint64 {
	return slices.Min(a.Locations())
}

// SeedRanges reads the seeds as pairs of start and length.
func (a *Almanac) SeedRanges() ([]rangemap.Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeeds, len(a.Seeds))
	}
	out := make([]rangemap.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r, err := rangemap.NewRange(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("almanac: seed range %d: %w", i/2, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// RangeLocations returns the locations of every seed in SeedRanges. The
// ranges are not sorted or merged.
func (a *Almanac) RangeLocations() ([]rangemap.Range, error) {
	seeds, err := a.SeedRanges()
	if err != nil {
		return nil, err
	}
	m := a.Condense()
	var out []rangemap.Range
	for _, r := range seeds {
		out = append(out, m.MapRange(r)...)
	}
	return out, nil
}

// LowestRangeLocation returns the lowest location of any seed in
// SeedRanges.
func (a *Almanac) LowestRangeLocation() (uint64, error) {
	locs, err := a.RangeLocations()
	if err != nil {
		return 0, err
	}
	if len(locs) == 0 {
		return 0, ErrNoSeeds
	}
	lowest := locs[0].Start
	for _, r := range locs[1:] {
		lowest = min(lowest, r.Start)
	}
	return lowest, nil
}
