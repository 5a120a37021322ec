// Package hill finds routes up a heightmap where each step may climb at most
// one unit.
package hill

import (
	"errors"
	"fmt"

	"github.com/puzzlebox/aoc"
)

// Map is a parsed heightmap. Heights run from 0 (a) to 25 (z).
type Map struct {
	Heights    aoc.Grid[int]
	Start, End aoc.Pt
}

// Parse reads a grid of a-z, with S marking the start (height a) and E the
// summit (height z).
func Parse(in string) (*Map, error) {
	raw, err := aoc.ParseGrid(in)
	if err != nil {
		return nil, err
	}
	size := raw.Size()
	m := &Map{Heights: aoc.MakeGrid[int](size.X, size.Y)}
	var sawStart, sawEnd bool
	for y, row := range raw {
		for x, c := range row {
			p := aoc.Pt{X: x, Y: y}
			switch {
			case c == 'S':
				m.Start, sawStart = p, true
				c = 'a'
			case c == 'E':
				m.End, sawEnd = p, true
				c = 'z'
			case c < 'a' || c > 'z':
				return nil, fmt.Errorf("unexpected character %q at %v", c, p)
			}
			m.Heights.Set(p, int(c-'a'))
		}
	}
	if !sawStart || !sawEnd {
		return nil, errors.New("map needs both S and E")
	}
	return m, nil
}

func (m *Map) neighbors(p aoc.Pt) []aoc.Neighbor[aoc.Pt] {
	h := m.Heights.At(p)
	var out []aoc.Neighbor[aoc.Pt]
	p.ForImmediateNeighbors(func(q aoc.Pt) bool {
		if hq, ok := m.Heights.AtOk(q); ok && hq <= h+1 {
			out = append(out, aoc.Neighbor[aoc.Pt]{Node: q, Cost: 1})
		}
		return true
	})
	return out
}

func manhattan(p, goal aoc.Pt) int {
	return p.MDist(goal)
}

// Climb returns the shortest route from `from` to the summit.
func (m *Map) Climb(from aoc.Pt) (aoc.PathResult[aoc.Pt], error) {
	return aoc.FindPath(from, []aoc.Pt{m.End}, m.neighbors, manhattan, aoc.WithDomain(m.Heights.In))
}

// FewestSteps returns the length of the shortest route from S to E.
func (m *Map) FewestSteps() (int, error) {
	res, err := m.Climb(m.Start)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// BestStart returns the fewest steps to the summit from any lowest square.
// Each candidate is searched independently and concurrently; squares that
// cannot reach the summit are skipped.
func (m *Map) BestStart() (int, error) {
	var starts []aoc.Pt
	for y, row := range m.Heights {
		for x, h := range row {
			if h == 0 {
				starts = append(starts, aoc.Pt{X: x, Y: y})
			}
		}
	}
	return bestOf(starts, m.Climb)
}

type climb struct {
	steps int
	err   error
}

// bestOf runs search from every start and returns the cheapest cost. Only
// aoc.ErrUnreachable is tolerated; any other error is returned.
func bestOf(starts []aoc.Pt, search func(aoc.Pt) (aoc.PathResult[aoc.Pt], error)) (int, error) {
	best := aoc.ParallelMapFold(starts, func(p aoc.Pt) climb {
		res, err := search(p)
		if err != nil {
			return climb{err: fmt.Errorf("from %v: %w", p, err)}
		}
		return climb{steps: res.Cost}
	}, func(best, c climb) climb {
		switch {
		case best.err != nil && !errors.Is(best.err, aoc.ErrUnreachable):
			return best
		case c.err != nil && !errors.Is(c.err, aoc.ErrUnreachable):
			return c
		case c.err != nil:
			return best
		case best.err != nil || c.steps < best.steps:
			return c
		}
		return best
	}, climb{err: aoc.ErrUnreachable})
	return best.steps, best.err
}
