package aoc

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Interval is the half-open range [Lo, Hi).
type Interval struct {
	Lo, Hi int
}

func (iv Interval) Empty() bool { return iv.Hi <= iv.Lo }

func (iv Interval) Len() int {
	if iv.Empty() {
		return 0
	}
	return iv.Hi - iv.Lo
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Lo, iv.Hi)
}

// IntervalSet is a set of integers stored as sorted, disjoint, non-adjacent
// intervals. The zero value is the empty set.
type IntervalSet struct {
	ivs []Interval
}

// NewIntervalSet returns the union of ivs.
func NewIntervalSet(ivs ...Interval) IntervalSet {
	var s IntervalSet
	s.ivs = normalize(slices.Clone(ivs))
	return s
}

func normalize(ivs []Interval) []Interval {
	ivs = slices.DeleteFunc(ivs, Interval.Empty)
	slices.SortFunc(ivs, func(a, b Interval) int { return cmp.Compare(a.Lo, b.Lo) })
	var out []Interval
	for _, iv := range ivs {
		if n := len(out); n > 0 && iv.Lo <= out[n-1].Hi {
			out[n-1].Hi = max(out[n-1].Hi, iv.Hi)
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Intervals returns a copy of the set's intervals in ascending order.
func (s IntervalSet) Intervals() []Interval {
	return slices.Clone(s.ivs)
}

func (s IntervalSet) Empty() bool { return len(s.ivs) == 0 }

// Len returns the number of integers in the set.
func (s IntervalSet) Len() int {
	n := 0
	for _, iv := range s.ivs {
		n += iv.Len()
	}
	return n
}

// Min returns the smallest member of the set.
func (s IntervalSet) Min() (int, bool) {
	if s.Empty() {
		return 0, false
	}
	return s.ivs[0].Lo, true
}

func (s IntervalSet) Contains(v int) bool {
	_, found := slices.BinarySearchFunc(s.ivs, v, func(iv Interval, v int) int {
		switch {
		case iv.Hi <= v:
			return -1
		case iv.Lo > v:
			return 1
		}
		return 0
	})
	return found
}

func (s IntervalSet) Union(o IntervalSet) IntervalSet {
	return IntervalSet{ivs: normalize(append(slices.Clone(s.ivs), o.ivs...))}
}

func (s IntervalSet) Intersect(o IntervalSet) IntervalSet {
	var out []Interval
	i, j := 0, 0
	for i < len(s.ivs) && j < len(o.ivs) {
		a, b := s.ivs[i], o.ivs[j]
		if iv := (Interval{max(a.Lo, b.Lo), min(a.Hi, b.Hi)}); !iv.Empty() {
			out = append(out, iv)
		}
		if a.Hi < b.Hi {
			i++
		} else {
			j++
		}
	}
	return IntervalSet{ivs: out}
}

// Subtract returns the members of s not in o.
func (s IntervalSet) Subtract(o IntervalSet) IntervalSet {
	var out []Interval
	j := 0
	for _, a := range s.ivs {
		lo := a.Lo
		for j < len(o.ivs) && o.ivs[j].Hi <= lo {
			j++
		}
		for k := j; k < len(o.ivs) && o.ivs[k].Lo < a.Hi; k++ {
			b := o.ivs[k]
			if b.Lo > lo {
				out = append(out, Interval{lo, b.Lo})
			}
			lo = max(lo, b.Hi)
		}
		if lo < a.Hi {
			out = append(out, Interval{lo, a.Hi})
		}
	}
	return IntervalSet{ivs: out}
}

// Shift adds d to every member.
func (s IntervalSet) Shift(d int) IntervalSet {
	out := make([]Interval, len(s.ivs))
	for i, iv := range s.ivs {
		out[i] = Interval{iv.Lo + d, iv.Hi + d}
	}
	return IntervalSet{ivs: out}
}

func (s IntervalSet) String() string {
	parts := make([]string, len(s.ivs))
	for i, iv := range s.ivs {
		parts[i] = iv.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
