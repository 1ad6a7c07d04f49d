package rangemap

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyRange = errors.New("rangemap: empty range")
	ErrOverflow   = errors.New("rangemap: range overflows uint64")
)

// Range is a closed interval [Start, End] of uint64 values.
type Range struct {
	Start, End uint64
}

// Full spans every uint64 value.
var Full = Range{Start: 0, End: math.MaxUint64}

// NewRange returns the range of length values beginning at start.
func NewRange(start, length uint64) (Range, error) {
	if length == 0 {
		return Range{}, ErrEmptyRange
	}
	if start > math.MaxUint64-(length-1) {
		return Range{}, fmt.Errorf("%w: start %d, length %d", ErrOverflow, start, length)
	}
	return Range{Start: start, End: start + length - 1}, nil
}

// Span returns End-Start, which is one less than the number of values in r.
func (r Range) Span() uint64 {
	return r.End - r.Start
}

// Len returns the number of values in r. It wraps to 0 for Full.
func (r Range) Len() uint64 {
	return r.Span() + 1
}

func (r Range) Contains(v uint64) bool {
	return r.Start <= v && v <= r.End
}

// ContainsRange reports whether o lies entirely within r.
func (r Range) ContainsRange(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Overlaps reports whether r and o share at least one value. Ranges that
// only touch at a boundary do not overlap.
func (r Range) Overlaps(o Range) bool {
	return min(r.End, o.End) >= max(r.Start, o.Start)
}

func (r Range) Disjoint(o Range) bool {
	return !r.Overlaps(o)
}

// Adjacent reports whether o starts right after r ends.
func (r Range) Adjacent(o Range) bool {
	return r.End != math.MaxUint64 && r.End+1 == o.Start
}

// Join returns the union of r and the adjacent range o.
func (r Range) Join(o Range) Range {
	if !r.Adjacent(o) {
		panic(fmt.Sprintf("rangemap: cannot join unconnected ranges %v and %v", r, o))
	}
	return Range{Start: r.Start, End: o.End}
}

// Compare orders disjoint ranges. It returns 0 only for identical ranges;
// otherwise it compares r.End with o.Start. The result is meaningless for
// ranges that overlap without being equal.
func (r Range) Compare(o Range) int {
	switch {
	case r == o:
		return 0
	case r.End < o.Start:
		return -1
	case r.End == o.Start:
		return 0
	default:
		return 1
	}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// Transfer maps v, which must lie in from, to the value at the same offset
// in to.
func Transfer(v uint64, from, to Range) uint64 {
	if !from.Contains(v) {
		panic(fmt.Sprintf("rangemap: transfer of %d outside %v", v, from))
	}
	return v - from.Start + to.Start
}
