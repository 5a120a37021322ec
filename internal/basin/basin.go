// Package basin plans a walk across a valley swept by blizzards. Every
// blizzard moves one square per minute and wraps around at the walls, so the
// valley repeats itself and the search runs over (x, y, minute mod period).
package basin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/puzzlebox/aoc"
)

// Node is a position at a time offset within the blizzard period.
type Node = aoc.Pt3[int]

// Blizzard is a blizzard's position at minute 0 and its heading.
type Blizzard struct {
	Pos aoc.Pt
	Dir aoc.Direction
}

// Valley is a parsed blizzard basin.
type Valley struct {
	// Size includes the surrounding walls.
	Size       aoc.Pt
	Start, End aoc.Pt
	Blizzards  []Blizzard

	period   int
	occupied []aoc.Grid[bool]
}

var interiorOrigin = aoc.Pt{X: 1, Y: 1}

// Parse reads the valley map. The start is the gap in the top wall and the
// end is the gap in the bottom wall.
func Parse(in string) (*Valley, error) {
	g, err := aoc.ParseGrid(in)
	if err != nil {
		return nil, err
	}
	v := &Valley{Size: g.Size()}
	if v.Size.X < 3 || v.Size.Y < 3 {
		return nil, fmt.Errorf("valley %v is too small", v.Size)
	}
	door := func(row []byte) (int, error) {
		if strings.Count(string(row), ".") != 1 {
			return 0, errors.New("wall must have exactly one gap")
		}
		return strings.IndexByte(string(row), '.'), nil
	}
	if v.Start.X, err = door(g[0]); err != nil {
		return nil, fmt.Errorf("top %w", err)
	}
	if v.End.X, err = door(g[v.Size.Y-1]); err != nil {
		return nil, fmt.Errorf("bottom %w", err)
	}
	v.End.Y = v.Size.Y - 1
	for y := 1; y < v.Size.Y-1; y++ {
		for x, c := range g[y] {
			p := aoc.Pt{X: x, Y: y}
			inside := v.inside(p)
			switch {
			case c == '#' && !inside:
			case c == '.' && inside:
			default:
				d, ok := aoc.ParseDirection(rune(c))
				if !ok || !inside {
					return nil, fmt.Errorf("unexpected %q at %v", c, p)
				}
				v.Blizzards = append(v.Blizzards, Blizzard{Pos: p, Dir: d})
			}
		}
	}
	v.simulate()
	return v, nil
}

func (v *Valley) interior() aoc.Pt {
	return v.Size.Sub(aoc.Pt{X: 2, Y: 2})
}

func (v *Valley) inside(p aoc.Pt) bool {
	in := v.interior()
	return p.X >= 1 && p.Y >= 1 && p.X <= in.X && p.Y <= in.Y
}

// BlizzardAt returns where b is after t minutes.
func (v *Valley) BlizzardAt(b Blizzard, t int) aoc.Pt {
	rel := b.Pos.Sub(interiorOrigin).Add(b.Dir.Delta().Scale(t))
	return aoc.StandardizePt(rel, v.interior()).Add(interiorOrigin)
}

func (v *Valley) state(t int) aoc.Grid[uint8] {
	g := aoc.MakeGrid[uint8](v.Size.X, v.Size.Y)
	for _, b := range v.Blizzards {
		p := v.BlizzardAt(b, t)
		g.Set(p, g.At(p)|1<<b.Dir)
	}
	return g
}

// simulate finds the blizzard period by hashing each minute's state until
// it matches minute 0, and records which squares are covered each minute.
func (v *Valley) simulate() {
	in := v.interior()
	limit := aoc.LCM(in.X, in.Y)
	h0 := v.state(0).Hash()
	v.period = limit
	for t := 1; t < limit; t++ {
		if v.state(t).Hash() == h0 {
			v.period = t
			break
		}
	}
	v.occupied = make([]aoc.Grid[bool], v.period)
	for t := range v.occupied {
		occ := aoc.MakeGrid[bool](v.Size.X, v.Size.Y)
		for _, b := range v.Blizzards {
			occ.Set(v.BlizzardAt(b, t), true)
		}
		v.occupied[t] = occ
	}
}

// Period is the number of minutes after which the blizzards repeat.
func (v *Valley) Period() int {
	return v.period
}

// Covered reports whether a blizzard is on p at minute t.
func (v *Valley) Covered(p aoc.Pt, t int) bool {
	return v.occupied[t%v.period].At(p)
}

// walkable reports whether p is ever somewhere to stand.
func (v *Valley) walkable(p aoc.Pt) bool {
	return p == v.Start || p == v.End || v.inside(p)
}

var moves = []aoc.Pt{
	aoc.Right.Delta(),
	aoc.Down.Delta(),
	aoc.Up.Delta(),
	aoc.Left.Delta(),
	{},
}

func (v *Valley) neighbors(n Node) []aoc.Neighbor[Node] {
	t := (n.Z + 1) % v.period
	var out []aoc.Neighbor[Node]
	for _, d := range moves {
		p := n.XY().Add(d)
		if !v.walkable(p) || v.Covered(p, t) {
			continue
		}
		out = append(out, aoc.Neighbor[Node]{Node: Node{X: p.X, Y: p.Y, Z: t}, Cost: 1})
	}
	return out
}

func samePlace(n, goal Node) bool {
	return n.XY() == goal.XY()
}

func estimate(n, goal Node) int {
	return n.XY().MDist(goal.XY())
}

// Cross walks from the start at minute 0 through each of the waypoints in
// turn, and returns the quickest such walk. Each step, including waiting in
// place, takes a minute.
func (v *Valley) Cross(waypoints ...aoc.Pt) (aoc.PathResult[Node], error) {
	goals := make([]Node, len(waypoints))
	for i, w := range waypoints {
		goals[i] = Node{X: w.X, Y: w.Y}
	}
	return aoc.FindPath(Node{X: v.Start.X, Y: v.Start.Y}, goals, v.neighbors, estimate,
		aoc.WithGoalFunc(samePlace),
		aoc.WithDomain(func(n Node) bool { return v.walkable(n.XY()) }),
	)
}
