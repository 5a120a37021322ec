// Package almanac maps seeds through a chain of range translations to
// their planting locations.
package almanac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/puzzlebox/aoc"
)

// Rule sends [Src, Src+Len) to [Dst, Dst+Len).
type Rule struct {
	Dst, Src, Len int
}

func (r Rule) source() aoc.IntervalSet {
	return aoc.NewIntervalSet(aoc.Interval{Lo: r.Src, Hi: r.Src + r.Len})
}

// Stage is one "x-to-y map". Values matched by no rule pass through.
type Stage struct {
	Name  string
	Rules []Rule
}

// Map translates a single value.
func (s Stage) Map(v int) int {
	for _, r := range s.Rules {
		if v >= r.Src && v < r.Src+r.Len {
			return r.Dst + v - r.Src
		}
	}
	return v
}

// MapSet translates every member of set at once.
func (s Stage) MapSet(set aoc.IntervalSet) aoc.IntervalSet {
	var done aoc.IntervalSet
	todo := set
	for _, r := range s.Rules {
		src := r.source()
		done = done.Union(todo.Intersect(src).Shift(r.Dst - r.Src))
		todo = todo.Subtract(src)
	}
	return done.Union(todo)
}

// Almanac is a parsed puzzle input.
type Almanac struct {
	Seeds  []int
	Stages []Stage
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Fields(s) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Parse reads the seeds line followed by blank-line separated stages.
func Parse(in string) (*Almanac, error) {
	blocks := strings.Split(strings.TrimSpace(strings.ReplaceAll(in, "\r", "")), "\n\n")
	seeds, ok := strings.CutPrefix(blocks[0], "seeds:")
	if !ok {
		return nil, errors.New("missing seeds line")
	}
	a := &Almanac{}
	var err error
	if a.Seeds, err = parseInts(seeds); err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}
	for _, b := range blocks[1:] {
		lines := strings.Split(b, "\n")
		name, ok := strings.CutSuffix(lines[0], " map:")
		if !ok {
			return nil, fmt.Errorf("bad stage header %q", lines[0])
		}
		st := Stage{Name: name}
		for _, l := range lines[1:] {
			n, err := parseInts(l)
			if err != nil || len(n) != 3 {
				return nil, fmt.Errorf("%s: bad rule %q", name, l)
			}
			st.Rules = append(st.Rules, Rule{Dst: n[0], Src: n[1], Len: n[2]})
		}
		a.Stages = append(a.Stages, st)
	}
	return a, nil
}

// Location runs a seed through every stage.
func (a *Almanac) Location(seed int) int {
	for _, s := range a.Stages {
		seed = s.Map(seed)
	}
	return seed
}

// Lowest returns the lowest location of any listed seed.
func (a *Almanac) Lowest() (int, error) {
	if len(a.Seeds) == 0 {
		return 0, errors.New("no seeds")
	}
	low := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		low = min(low, a.Location(s))
	}
	return low, nil
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() (aoc.IntervalSet, error) {
	if len(a.Seeds)%2 != 0 {
		return aoc.IntervalSet{}, fmt.Errorf("odd number of seed values: %d", len(a.Seeds))
	}
	var ivs []aoc.Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		ivs = append(ivs, aoc.Interval{Lo: a.Seeds[i], Hi: a.Seeds[i] + a.Seeds[i+1]})
	}
	return aoc.NewIntervalSet(ivs...), nil
}

// LowestInRanges is Lowest with the seeds read as ranges.
func (a *Almanac) LowestInRanges() (int, error) {
	set, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	for _, s := range a.Stages {
		set = s.MapSet(set)
	}
	low, ok := set.Min()
	if !ok {
		return 0, errors.New("no seeds")
	}
	return low, nil
}
