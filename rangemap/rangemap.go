// Package rangemap maps uint64 values through piecewise translations.
//
// A RangeMap partitions the whole uint64 domain into disjoint ranges, each
// translated onto a codomain range of the same length. Maps are built with
// a Builder, never change afterwards, and can be composed with
// Concatenate so that a pipeline of maps collapses into one.
package rangemap

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"tailscale.com/util/deephash"
)

// Entry is one translation of a RangeMap.
type Entry struct {
	From, To Range
}

// RangeMap is an immutable map from uint64 to uint64. Its domain ranges
// are disjoint and cover every uint64, and so are its codomain ranges.
//
// The zero value is not usable; use Identity or a Builder.
type RangeMap struct {
	entries []Entry // sorted by From
}

// Identity returns the map that sends every value to itself.
func Identity() RangeMap {
	return RangeMap{entries: []Entry{{From: Full, To: Full}}}
}

// Len returns the number of entries in m.
func (m RangeMap) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries of m in ascending domain order.
func (m RangeMap) Entries() []Entry {
	return slices.Clone(m.entries)
}

// find returns the index of the entry whose domain contains v.
func (m RangeMap) find(v uint64) int {
	i, _ := slices.BinarySearchFunc(m.entries, Range{Start: v, End: v}, func(e Entry, t Range) int {
		return e.From.Compare(t)
	})
	if i == len(m.entries) || !m.entries[i].From.Contains(v) {
		panic(fmt.Sprintf("rangemap: %d is not covered by any entry", v))
	}
	return i
}

// Map returns the image of v.
func (m RangeMap) Map(v uint64) uint64 {
	e := m.entries[m.find(v)]
	return Transfer(v, e.From, e.To)
}

// MapRange returns the image of every value in q. A single query range
// may be split across several entries, so the result can hold more than
// one range. Output ranges appear in the order of the input values they
// came from.
func (m RangeMap) MapRange(q Range) []Range {
	var out []Range
	for _, e := range m.entries[m.find(q.Start):] {
		if e.From.Disjoint(q) {
			continue
		}
		diff := q.Start - e.From.Start
		if e.From.ContainsRange(q) {
			out = append(out, Range{Start: e.To.Start + diff, End: e.To.Start + diff + q.Span()})
			return out
		}
		out = append(out, Range{Start: e.To.Start + diff, End: e.To.End})
		q.Start = e.From.End + 1
	}
	panic(fmt.Sprintf("rangemap: %v is not fully covered", q))
}

// Invert returns the map that undoes m. It panics if the codomain ranges
// of m do not partition the uint64 domain; see Bijective.
func (m RangeMap) Invert() RangeMap {
	inv := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		inv[i] = Entry{From: e.To, To: e.From}
	}
	slices.SortFunc(inv, func(a, b Entry) int {
		return cmp.Compare(a.From.Start, b.From.Start)
	})
	if err := partitions(inv, func(e Entry) Range { return e.From }); err != nil {
		panic(fmt.Errorf("%w: %w", ErrNotBijective, err))
	}
	return RangeMap{entries: inv}
}

// Bijective reports whether every value is the image of exactly one
// value, which is what Invert and Concatenate require of their receiver.
// A map built from overlapping destinations is still usable with Map and
// MapRange.
func (m RangeMap) Bijective() bool {
	byTo := slices.Clone(m.entries)
	slices.SortFunc(byTo, func(a, b Entry) int {
		return cmp.Compare(a.To.Start, b.To.Start)
	})
	return partitions(byTo, func(e Entry) Range { return e.To }) == nil
}

// Domain returns the extent of the domain ranges of m joined together.
// For a valid map it is Full.
func (m RangeMap) Domain() Range {
	return joinAll(m.entries, func(e Entry) Range { return e.From })
}

// Codomain returns the extent of the codomain ranges of m joined together.
// For a valid map it is Full.
func (m RangeMap) Codomain() Range {
	byTo := slices.Clone(m.entries)
	slices.SortFunc(byTo, func(a, b Entry) int {
		return cmp.Compare(a.To.Start, b.To.Start)
	})
	return joinAll(byTo, func(e Entry) Range { return e.To })
}

func joinAll(entries []Entry, sel func(Entry) Range) Range {
	if len(entries) == 0 {
		panic("rangemap: empty map")
	}
	r := sel(entries[0])
	for _, e := range entries[1:] {
		r = r.Join(sel(e))
	}
	return r
}

// Equal reports whether m and o consist of the same entries.
func (m RangeMap) Equal(o RangeMap) bool {
	return slices.Equal(m.entries, o.entries)
}

var hashRangeMap = sync.OnceValue(func() func(*RangeMap) deephash.Sum {
	return deephash.HasherForType[RangeMap]()
})

// Hash returns a structural hash of m. Maps with equal entries hash
// equally.
func (m RangeMap) Hash() deephash.Sum {
	return hashRangeMap()(&m)
}

func (m RangeMap) String() string {
	var sb strings.Builder
	for _, e := range m.entries {
		fmt.Fprintf(&sb, "%v -> %v\n", e.From, e.To)
	}
	return sb.String()
}
