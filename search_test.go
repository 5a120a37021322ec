package aoc

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"
)

type costGrid struct {
	g Grid[byte]
}

// newCostGrid builds a grid where entering a cell costs its digit and '#'
// cannot be entered.
func newCostGrid(t *testing.T, rows ...string) costGrid {
	t.Helper()
	g, err := ParseGrid(strings.Join(rows, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	return costGrid{g}
}

func (c costGrid) neighbors(p Pt) []Neighbor[Pt] {
	var out []Neighbor[Pt]
	for _, d := range Directions {
		q := p.Add(d.Delta())
		v, ok := c.g.AtOk(q)
		if !ok || v == '#' {
			continue
		}
		out = append(out, Neighbor[Pt]{Node: q, Cost: int(v - '0')})
	}
	return out
}

func (c costGrid) cells() []Pt {
	var out []Pt
	for y, row := range c.g {
		for x, v := range row {
			if v != '#' {
				out = append(out, Pt{x, y})
			}
		}
	}
	return out
}

func manhattan(p, goal Pt) int { return p.MDist(goal) }

// checkerboard is admissible but not consistent.
func checkerboard(p, goal Pt) int {
	if (p.X+p.Y)%2 == 0 {
		return p.MDist(goal)
	}
	return 0
}

// relax computes single-source distances by Bellman-Ford style relaxation.
func relax[N comparable](nodes []N, start N, neighbors func(N) []Neighbor[N]) map[N]int {
	dist := map[N]int{start: 0}
	for changed := true; changed; {
		changed = false
		for _, n := range nodes {
			d, ok := dist[n]
			if !ok {
				continue
			}
			for _, nb := range neighbors(n) {
				if old, ok := dist[nb.Node]; !ok || d+nb.Cost < old {
					dist[nb.Node] = d + nb.Cost
					changed = true
				}
			}
		}
	}
	return dist
}

// checkPath verifies that res.Path is a walk whose step costs add up to
// res.Cost.
func checkPath[N comparable](t *testing.T, res PathResult[N], neighbors func(N) []Neighbor[N]) {
	t.Helper()
	total := 0
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		j := slices.IndexFunc(neighbors(a), func(nb Neighbor[N]) bool { return nb.Node == b })
		if j < 0 {
			t.Fatalf("path step %d: %v is not a neighbor of %v", i, b, a)
		}
		total += neighbors(a)[j].Cost
	}
	if total != res.Cost {
		t.Errorf("path costs %d, but Cost = %d", total, res.Cost)
	}
	if got := Sum(res.Legs...); got != res.Cost {
		t.Errorf("legs sum to %d, but Cost = %d", got, res.Cost)
	}
}

var weighted = []string{
	"13119",
	"19911",
	"11191",
	"99111",
}

func TestFindPathOptimal(t *testing.T) {
	c := newCostGrid(t, weighted...)
	heuristics := map[string]Heuristic[Pt]{
		"zero":         ZeroHeuristic[Pt],
		"manhattan":    manhattan,
		"checkerboard": checkerboard,
	}
	cells := c.cells()
	for _, start := range cells {
		want := relax(cells, start, c.neighbors)
		for _, goal := range cells {
			for name, h := range heuristics {
				res, err := FindPath(start, []Pt{goal}, c.neighbors, h)
				if err != nil {
					t.Fatalf("%s: FindPath(%v, %v): %v", name, start, goal, err)
				}
				if res.Cost != want[goal] {
					t.Errorf("%s: FindPath(%v, %v) = %d, want %d", name, start, goal, res.Cost, want[goal])
				}
				if res.Path[0] != start || res.Path[len(res.Path)-1] != goal {
					t.Errorf("%s: path %v does not run from %v to %v", name, res.Path, start, goal)
				}
				checkPath(t, res, c.neighbors)
			}
		}
	}
}

func TestFindPathHeuristicSavesWork(t *testing.T) {
	c := newCostGrid(t,
		"11111111",
		"11111111",
		"11111111",
		"11111111",
		"11111111",
	)
	start, goal := Pt{0, 0}, Pt{7, 4}
	ucs, err := FindPath(start, []Pt{goal}, c.neighbors, nil)
	if err != nil {
		t.Fatal(err)
	}
	astar, err := FindPath(start, []Pt{goal}, c.neighbors, manhattan)
	if err != nil {
		t.Fatal(err)
	}
	if ucs.Cost != 11 || astar.Cost != 11 {
		t.Errorf("costs = %d, %d; want 11", ucs.Cost, astar.Cost)
	}
	if astar.Expanded > ucs.Expanded {
		t.Errorf("A* expanded %d nodes, uniform cost %d", astar.Expanded, ucs.Expanded)
	}
}

// TestFindPathReopens uses a heuristic that lures the search into settling
// B through the expensive edge first.
func TestFindPathReopens(t *testing.T) {
	edges := map[string][]Neighbor[string]{
		"S": {{"A", 1}, {"B", 3}},
		"A": {{"B", 1}},
		"B": {{"G", 3}},
	}
	est := map[string]int{"A": 4}
	res, err := FindPath("S", []string{"G"}, func(n string) []Neighbor[string] { return edges[n] },
		func(n, _ string) int { return est[n] })
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 5 {
		t.Errorf("Cost = %d, want 5", res.Cost)
	}
	if want := []string{"S", "A", "B", "G"}; !slices.Equal(res.Path, want) {
		t.Errorf("Path = %v, want %v", res.Path, want)
	}
}

func TestFindPathStartIsGoal(t *testing.T) {
	neighbors := func(Pt) []Neighbor[Pt] {
		t.Fatal("neighbors called")
		return nil
	}
	res, err := FindPath(Pt{2, 3}, []Pt{{2, 3}}, neighbors, manhattan)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 0 || res.Expanded != 0 || !slices.Equal(res.Path, []Pt{{2, 3}}) {
		t.Errorf("FindPath = %+v, want zero cost single node path", res)
	}
}

func TestFindPathMultiGoal(t *testing.T) {
	c := newCostGrid(t, weighted...)
	s, a, b := Pt{0, 0}, Pt{4, 0}, Pt{0, 3}
	whole, err := FindPath(s, []Pt{a, b}, c.neighbors, manhattan)
	if err != nil {
		t.Fatal(err)
	}
	first := MustGet(FindPath(s, []Pt{a}, c.neighbors, manhattan))
	second := MustGet(FindPath(a, []Pt{b}, c.neighbors, manhattan))
	if whole.Cost != first.Cost+second.Cost {
		t.Errorf("Cost = %d, want %d + %d", whole.Cost, first.Cost, second.Cost)
	}
	if want := []int{first.Cost, second.Cost}; !slices.Equal(whole.Legs, want) {
		t.Errorf("Legs = %v, want %v", whole.Legs, want)
	}
	if want := len(first.Path) + len(second.Path) - 1; len(whole.Path) != want {
		t.Errorf("len(Path) = %d, want %d", len(whole.Path), want)
	}
	checkPath(t, whole, c.neighbors)

	// Visiting the same goal twice costs nothing extra.
	twice := MustGet(FindPath(s, []Pt{a, a}, c.neighbors, manhattan))
	if twice.Cost != first.Cost || !slices.Equal(twice.Path, first.Path) {
		t.Errorf("FindPath(s, [a a]) = %+v, want %+v", twice, first)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	c := newCostGrid(t,
		"11#11",
		"11#11",
	)
	_, err := FindPath(Pt{0, 0}, []Pt{{4, 1}}, c.neighbors, manhattan)
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("err = %v, want %v", err, ErrUnreachable)
	}
	// Only the second leg is blocked.
	_, err = FindPath(Pt{0, 0}, []Pt{{1, 1}, {3, 0}}, c.neighbors, manhattan)
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("err = %v, want %v", err, ErrUnreachable)
	}
	if err != nil && !strings.Contains(err.Error(), "leg 1") {
		t.Errorf("err = %q, want it to name leg 1", err)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	c := newCostGrid(t,
		"111111",
		"111111",
		"111111",
		"111111",
	)
	run := func(int) []Pt {
		res, err := FindPath(Pt{0, 0}, []Pt{{5, 3}, {0, 3}}, c.neighbors, manhattan)
		if err != nil {
			t.Error(err)
			return nil
		}
		return res.Path
	}
	want := run(0)
	for i, got := range Parallel(make([]int, 16), run) {
		if !slices.Equal(got, want) {
			t.Errorf("run %d: Path = %v, want %v", i, got, want)
		}
	}
}

func TestFindPathInvalidInput(t *testing.T) {
	c := newCostGrid(t, weighted...)
	if _, err := FindPath(Pt{0, 0}, nil, c.neighbors, manhattan); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("no goals: err = %v, want %v", err, ErrInvalidInput)
	}
	in := WithDomain(c.g.In)
	if _, err := FindPath(Pt{-1, 0}, []Pt{{1, 1}}, c.neighbors, manhattan, in); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("start outside: err = %v, want %v", err, ErrInvalidInput)
	}
	if _, err := FindPath(Pt{0, 0}, []Pt{{1, 1}, {9, 9}}, c.neighbors, manhattan, in); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("goal outside: err = %v, want %v", err, ErrInvalidInput)
	}
	negative := func(n int) []Neighbor[int] { return []Neighbor[int]{{n + 1, -1}} }
	if _, err := FindPath(0, []int{3}, negative, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative cost: err = %v, want %v", err, ErrInvalidInput)
	}
}

func TestFindPathCostOverflow(t *testing.T) {
	line := func(n int) []Neighbor[int] {
		return []Neighbor[int]{{n + 1, math.MaxInt - 1}}
	}
	if _, err := FindPath(0, []int{2}, line, nil); !errors.Is(err, ErrCostOverflow) {
		t.Errorf("single leg: err = %v, want %v", err, ErrCostOverflow)
	}
	res, err := FindPath(0, []int{1}, line, nil)
	if err != nil || res.Cost != MaxCost-1 {
		t.Errorf("FindPath(0, [1]) = %v, %v; want %d", res.Cost, err, MaxCost-1)
	}
	if _, err := FindPath(0, []int{1, 2}, line, nil); !errors.Is(err, ErrCostOverflow) {
		t.Errorf("two legs: err = %v, want %v", err, ErrCostOverflow)
	}
}

func TestFindPathSearchLimit(t *testing.T) {
	c := newCostGrid(t,
		"11111111",
		"11111111",
		"11111111",
		"11111111",
	)
	start, goal := Pt{0, 0}, Pt{7, 3}
	if _, err := FindPath(start, []Pt{goal}, c.neighbors, nil, WithMaxExpansions[Pt](5)); !errors.Is(err, ErrSearchLimit) {
		t.Errorf("err = %v, want %v", err, ErrSearchLimit)
	}
	res, err := FindPath(start, []Pt{goal}, c.neighbors, nil, WithMaxExpansions[Pt](1000))
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 10 {
		t.Errorf("Cost = %d, want 10", res.Cost)
	}
	// The budget is shared by every leg.
	_, err = FindPath(start, []Pt{goal, start}, c.neighbors, nil, WithMaxExpansions[Pt](res.Expanded+1))
	if !errors.Is(err, ErrSearchLimit) {
		t.Errorf("second leg: err = %v, want %v", err, ErrSearchLimit)
	}
}

// tick is a position on a line at a point in time.
type tick struct{ X, T int }

func TestFindPathGoalFunc(t *testing.T) {
	neighbors := func(n tick) []Neighbor[tick] {
		return []Neighbor[tick]{
			{tick{n.X + 1, n.T + 1}, 1},
			{tick{n.X, n.T + 1}, 1},
			{tick{n.X - 1, n.T + 1}, 1},
		}
	}
	h := func(n, goal tick) int { return AbsDiff(n.X, goal.X) }
	atX := WithGoalFunc(func(n, goal tick) bool { return n.X == goal.X })
	res, err := FindPath(tick{0, 0}, []tick{{3, 0}, {0, 0}}, neighbors, h, atX)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 6 {
		t.Errorf("Cost = %d, want 6", res.Cost)
	}
	if got := res.Path[3]; got != (tick{3, 3}) {
		t.Errorf("first leg ends at %v, want {3 3}", got)
	}
	if got := res.Path[len(res.Path)-1]; got != (tick{0, 6}) {
		t.Errorf("path ends at %v, want {0 6}", got)
	}
}
