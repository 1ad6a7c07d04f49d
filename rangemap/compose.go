package rangemap

import (
	"fmt"
	"math"
)

// Concatenate returns the map that applies m and then rhs:
//
//	m.Concatenate(rhs).Map(x) == rhs.Map(m.Map(x))
//
// It works on range boundaries only. The codomain of m, sorted, is walked
// in lock step with the domain of rhs; at every step the overlap of the
// two current ranges becomes one entry of the result and whichever range
// ends later keeps its remainder for the next step.
func (m RangeMap) Concatenate(rhs RangeMap) RangeMap {
	lhs := m.Invert().entries // From is the shared middle domain
	mid := rhs.entries

	var b Builder
	i, j := 0, 0
	l, r := lhs[0], mid[0]
	for {
		if l.From.Start != r.From.Start {
			panic(fmt.Sprintf("rangemap: concatenate out of step at %v and %v", l.From, r.From))
		}
		end := min(l.From.End, r.From.End)
		n := end - l.From.Start
		b.Insert(
			Range{Start: l.To.Start, End: l.To.Start + n},
			Range{Start: r.To.Start, End: r.To.Start + n},
		)
		if end == math.MaxUint64 {
			if i != len(lhs)-1 || j != len(mid)-1 {
				panic("rangemap: concatenate reached the end of one map before the other")
			}
			break
		}
		l, i = step(lhs, i, l, end)
		r, j = step(mid, j, r, end)
	}
	return b.MustBuild()
}

// step moves past the values up to end of the current entry cur at
// entries[i]. It returns the remainder of cur if cur extends beyond end,
// or the next entry otherwise.
func step(entries []Entry, i int, cur Entry, end uint64) (Entry, int) {
	if cur.From.End > end {
		skip := end - cur.From.Start + 1
		return Entry{
			From: Range{Start: end + 1, End: cur.From.End},
			To:   Range{Start: cur.To.Start + skip, End: cur.To.End},
		}, i
	}
	i++
	if i == len(entries) {
		panic(fmt.Sprintf("rangemap: map ends at %d", end))
	}
	return entries[i], i
}

// Compose concatenates maps from left to right. With no maps it returns
// Identity.
func Compose(maps ...RangeMap) RangeMap {
	if len(maps) == 0 {
		return Identity()
	}
	out := maps[0]
	for _, m := range maps[1:] {
		out = out.Concatenate(m)
	}
	return out
}
