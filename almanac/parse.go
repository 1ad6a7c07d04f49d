package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/maisem/aoc-ranges/rangemap"
)

var (
	headerRx = regexp.MustCompile(`^(\w+)-to-(\w+) map:$`)

	errSyntax = errors.New("almanac: syntax error")
)

// Parse reads an almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Each map line is a destination start, a source start and a length.
func Parse(r io.Reader) (*Almanac, error) {
	var (
		a    Almanac
		line int
		cur  *rangemap.Builder
		hdr  []string
	)
	finish := func() error {
		if cur == nil {
			return nil
		}
		m, err := cur.Build()
		if err != nil {
			return fmt.Errorf("almanac: %s-to-%s map: %w", hdr[1], hdr[2], err)
		}
		a.Stages = append(a.Stages, Stage{Source: hdr[1], Target: hdr[2], Map: m})
		cur = nil
		return nil
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		switch {
		case text == "":
			if err := finish(); err != nil {
				return nil, err
			}
		case a.Seeds == nil:
			rest, ok := strings.CutPrefix(text, "seeds:")
			if !ok {
				return nil, fmt.Errorf("almanac: line %d: %w: want seeds, got %q", line, errSyntax, text)
			}
			seeds, err := parseUints(rest)
			if err != nil {
				return nil, fmt.Errorf("almanac: line %d: %w", line, err)
			}
			if len(seeds) == 0 {
				return nil, fmt.Errorf("almanac: line %d: %w", line, ErrNoSeeds)
			}
			a.Seeds = seeds
		case cur == nil:
			hdr = headerRx.FindStringSubmatch(text)
			if hdr == nil {
				return nil, fmt.Errorf("almanac: line %d: %w: want map header, got %q", line, errSyntax, text)
			}
			cur = rangemap.NewBuilder()
		default:
			nums, err := parseUints(text)
			if err != nil {
				return nil, fmt.Errorf("almanac: line %d: %w", line, err)
			}
			if len(nums) != 3 {
				return nil, fmt.Errorf("almanac: line %d: %w: want 3 numbers, got %d", line, errSyntax, len(nums))
			}
			if err := cur.Push(nums[0], nums[1], nums[2]).Err(); err != nil {
				return nil, fmt.Errorf("almanac: line %d: %w", line, err)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if err := finish(); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

func parseUints(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errSyntax, err)
		}
		out[i] = v
	}
	return out, nil
}
