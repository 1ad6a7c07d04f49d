// Package aoc runs Advent of Code solutions against the sample embedded in
// their doc comments and then against the real puzzle input.
//
// A solver is a struct embedding *Puzzle with methods named D<day>p<part>
// returning any. A doc comment of the form
//
//	/*
//	want=35
//
//	<sample input>
//	*/
//
// on a method declares the expected answer for the sample. A method without
// its own sample input reuses the input of the previous method.
package aoc

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: m[1], input: m[2]}, true
}

func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.input = Or(s.input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples, nil
}

// Puzzle is the handle a solver uses to reach its input.
type Puzzle struct {
	year       int
	day        int
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) inputPath() string {
	return filepath.Join(flagCache, strconv.Itoa(p.year), strconv.Itoa(p.day)+".input")
}

// Input returns the sample input in sample mode and the puzzle input
// otherwise. The puzzle input comes from -input if set, else from the
// cache, else from adventofcode.com.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if flagInput != "" {
		return MustGet(os.ReadFile(flagInput))
	}
	return fileOrFetch(p.inputPath(), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day))
}

func (p *Puzzle) Reader() io.Reader {
	return bytes.NewReader(p.Input())
}

// Debugf logs when -debug is set and the sample is running.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		log.Printf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return s
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods returns the D<day>p<part> methods of x by day, with the
// parts of each day in order.
func extractMethods(x any) map[int][]partSolver {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Elem().Type()
	days := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		name := vt.Method(i).Name
		m := methodRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Elem().Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: want func() any", name)
		}
		d := MustGet(strconv.Atoi(m[1]))
		days[d] = append(days[d], partSolver{fn: fn, Part: m[2], Name: name})
	}
	for _, parts := range days {
		slices.SortFunc(parts, func(a, b partSolver) int {
			return strings.Compare(a.Part, b.Part)
		})
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInput      string
	flagCache      string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", "read the puzzle input from this file instead of fetching it")
	flag.StringVar(&flagCache, "cache", ".", "directory for fetched puzzle inputs")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runDay runs every part of a day and reports whether all samples matched.
func runDay(slvr any, p *Puzzle, parts []partSolver) bool {
	fmt.Println("Running day", p.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		for _, sm := range []bool{true, false} {
			if (!sm && flagOnlySample) || (sm && flagSkipSample) {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so fetching is not timed.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %v (took %v)\n", ps.Part, got, took)
				continue
			}
			if want := p.Sample().want; fmt.Sprint(got) != want {
				fmt.Printf("part %s sample: %v ❌; want %v\n", ps.Part, got, want)
				return false
			}
			fmt.Printf("part %s sample: %v ✅ (%v)\n", ps.Part, got, took)
		}
	}
	return true
}

// Run parses the command line and runs the solutions in slvr. src is the
// source of the file declaring them, from which samples are read.
func Run(year int, src []byte, slvr any) {
	samples := MustGet(extractSamples(src))
	days := extractMethods(slvr)
	initFlags()

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	if flagCurDay != -1 {
		if _, ok := days[flagCurDay]; !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		dayNums = []int{flagCurDay}
	}
	failed := false
	for i, d := range dayNums {
		if i > 0 {
			fmt.Println()
		}
		p := &Puzzle{year: year, day: d, samples: samples}
		if !runDay(slvr, p, days[d]) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
