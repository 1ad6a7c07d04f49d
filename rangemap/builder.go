package rangemap

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	ErrOverlap       = errors.New("rangemap: overlapping domain ranges")
	ErrLength        = errors.New("rangemap: domain and codomain lengths differ")
	ErrNotBijective  = errors.New("rangemap: codomain ranges do not partition the domain")
	errUncoveredSpan = errors.New("rangemap: domain ranges leave a gap")
)

// Builder accumulates explicit mappings for a RangeMap. Build fills the
// gaps with identity mappings.
//
// The zero value is ready to use and builds the identity map.
type Builder struct {
	entries []Entry
	err     error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Insert maps the domain range from onto the codomain range to.
func (b *Builder) Insert(from, to Range) *Builder {
	if b.err != nil {
		return b
	}
	if from.Start > from.End || to.Start > to.End {
		b.err = fmt.Errorf("%w: %v -> %v", ErrEmptyRange, from, to)
		return b
	}
	if from.Span() != to.Span() {
		b.err = fmt.Errorf("%w: %v -> %v", ErrLength, from, to)
		return b
	}
	b.entries = append(b.entries, Entry{From: from, To: to})
	return b
}

// Push adds the mapping of length values starting at src onto the values
// starting at dest.
func (b *Builder) Push(dest, src, length uint64) *Builder {
	if b.err != nil {
		return b
	}
	from, err := NewRange(src, length)
	if err != nil {
		b.err = fmt.Errorf("source of (%d %d %d): %w", dest, src, length, err)
		return b
	}
	to, err := NewRange(dest, length)
	if err != nil {
		b.err = fmt.Errorf("destination of (%d %d %d): %w", dest, src, length, err)
		return b
	}
	return b.Insert(from, to)
}

// Err returns the first error recorded by Insert or Push.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the finished map. Every value not covered by an inserted
// domain range maps to itself.
func (b *Builder) Build() (RangeMap, error) {
	if b.err != nil {
		return RangeMap{}, b.err
	}
	entries := slices.Clone(b.entries)
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.From.Start, b.From.Start)
	})
	for i := 1; i < len(entries); i++ {
		if entries[i-1].From.Overlaps(entries[i].From) {
			return RangeMap{}, fmt.Errorf("%w: %v and %v", ErrOverlap, entries[i-1].From, entries[i].From)
		}
	}
	m := RangeMap{entries: fillGaps(entries)}
	if err := m.check(); err != nil {
		return RangeMap{}, err
	}
	return m, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() RangeMap {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// fillGaps returns entries, sorted and disjoint by domain, with an identity
// entry added for every uncovered span of the domain.
func fillGaps(entries []Entry) []Entry {
	out := make([]Entry, 0, 2*len(entries)+1)
	var next uint64 // first value not yet covered
	done := false   // covered through math.MaxUint64
	for _, e := range entries {
		if e.From.Start > next {
			gap := Range{Start: next, End: e.From.Start - 1}
			out = append(out, Entry{From: gap, To: gap})
		}
		out = append(out, e)
		if e.From.End == math.MaxUint64 {
			done = true
			break
		}
		next = e.From.End + 1
	}
	if !done {
		gap := Range{Start: next, End: math.MaxUint64}
		out = append(out, Entry{From: gap, To: gap})
	}
	return out
}

// check verifies that the domain ranges of m partition the uint64 domain
// and that every entry preserves length.
func (m RangeMap) check() error {
	if err := partitions(m.entries, func(e Entry) Range { return e.From }); err != nil {
		return err
	}
	for _, e := range m.entries {
		if e.From.Span() != e.To.Span() {
			return fmt.Errorf("%w: %v -> %v", ErrLength, e.From, e.To)
		}
	}
	return nil
}

// partitions reports whether the ranges selected from the sorted entries
// cover every uint64 exactly once.
func partitions(entries []Entry, sel func(Entry) Range) error {
	if len(entries) == 0 {
		return errUncoveredSpan
	}
	if first := sel(entries[0]); first.Start != 0 {
		return fmt.Errorf("%w: below %v", errUncoveredSpan, first)
	}
	for i := 1; i < len(entries); i++ {
		prev, cur := sel(entries[i-1]), sel(entries[i])
		if prev.Overlaps(cur) {
			return fmt.Errorf("%w: %v and %v", ErrOverlap, prev, cur)
		}
		if !prev.Adjacent(cur) {
			return fmt.Errorf("%w: between %v and %v", errUncoveredSpan, prev, cur)
		}
	}
	if last := sel(entries[len(entries)-1]); last.End != math.MaxUint64 {
		return fmt.Errorf("%w: above %v", errUncoveredSpan, last)
	}
	return nil
}
