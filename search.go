package aoc

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnreachable is returned when a leg's frontier empties before its
	// goal is reached.
	ErrUnreachable = errors.New("goal unreachable")
	// ErrInvalidInput is returned for bad preconditions: no goals, a start
	// or goal outside the domain, or a negative step cost.
	ErrInvalidInput = errors.New("invalid search input")
	// ErrCostOverflow is returned when a path cost would exceed MaxCost.
	ErrCostOverflow = errors.New("path cost overflow")
	// ErrSearchLimit is returned when WithMaxExpansions is exceeded.
	ErrSearchLimit = errors.New("search expansion limit reached")
)

// MaxCost is the largest total path cost FindPath can report.
const MaxCost = math.MaxInt

// Neighbor is a node reachable in one move, and the cost of that move.
type Neighbor[N comparable] struct {
	Node N
	Cost int
}

// Heuristic estimates the remaining cost from n to goal. It must never
// overestimate for FindPath to return optimal costs.
type Heuristic[N comparable] func(n, goal N) int

// ZeroHeuristic turns FindPath into a uniform-cost search.
func ZeroHeuristic[N comparable](N, N) int { return 0 }

// PathResult is the outcome of a successful FindPath.
type PathResult[N comparable] struct {
	// Path runs from the start through every goal in order. Nodes shared by
	// consecutive legs appear once.
	Path []N
	Cost int
	// Legs holds the cost of each leg; they sum to Cost.
	Legs []int
	// Expanded is the number of nodes whose neighbors were generated.
	Expanded int
}

type searchConfig[N comparable] struct {
	match         func(n, goal N) bool
	domain        func(N) bool
	maxExpansions int
}

// SearchOption configures FindPath.
type SearchOption[N comparable] func(*searchConfig[N])

// WithGoalFunc sets how a node is matched against a goal. The default is ==.
// The node that matched becomes the start of the next leg.
func WithGoalFunc[N comparable](match func(n, goal N) bool) SearchOption[N] {
	return func(c *searchConfig[N]) { c.match = match }
}

// WithDomain rejects a start or goal for which valid returns false.
func WithDomain[N comparable](valid func(N) bool) SearchOption[N] {
	return func(c *searchConfig[N]) { c.domain = valid }
}

// WithMaxExpansions bounds the total number of expansions across all legs.
func WithMaxExpansions[N comparable](n int) SearchOption[N] {
	return func(c *searchConfig[N]) { c.maxExpansions = n }
}

// FindPath returns a minimum cost path from start that visits goals in
// order. Each leg is searched independently with A*, using h as the
// estimate towards that leg's goal. The neighbors and h functions must be
// deterministic; identical inputs yield identical paths.
//
// It is safe to call concurrently as long as neighbors and h are.
func FindPath[N comparable](start N, goals []N, neighbors func(N) []Neighbor[N], h Heuristic[N], opts ...SearchOption[N]) (PathResult[N], error) {
	cfg := searchConfig[N]{
		match: func(n, goal N) bool { return n == goal },
	}
	for _, o := range opts {
		o(&cfg)
	}
	if h == nil {
		h = ZeroHeuristic[N]
	}
	if len(goals) == 0 {
		return PathResult[N]{}, fmt.Errorf("%w: no goals", ErrInvalidInput)
	}
	if cfg.domain != nil {
		if !cfg.domain(start) {
			return PathResult[N]{}, fmt.Errorf("%w: start %v out of domain", ErrInvalidInput, start)
		}
		for i, g := range goals {
			if !cfg.domain(g) {
				return PathResult[N]{}, fmt.Errorf("%w: goal %d (%v) out of domain", ErrInvalidInput, i, g)
			}
		}
	}

	res := PathResult[N]{Path: []N{start}}
	cur := start
	for i, goal := range goals {
		l := leg[N]{
			cfg:       &cfg,
			neighbors: neighbors,
			h:         h,
			goal:      goal,
			budget:    cfg.maxExpansions - res.Expanded,
		}
		path, cost, err := l.run(cur)
		res.Expanded += l.expanded
		if err != nil {
			return PathResult[N]{}, fmt.Errorf("leg %d (%v -> %v): %w", i, cur, goal, err)
		}
		if cost > MaxCost-res.Cost {
			return PathResult[N]{}, fmt.Errorf("leg %d: %w", i, ErrCostOverflow)
		}
		res.Cost += cost
		res.Legs = append(res.Legs, cost)
		res.Path = append(res.Path, path[1:]...)
		cur = path[len(path)-1]
	}
	return res, nil
}

// leg is the search state for a single start to goal segment.
type leg[N comparable] struct {
	cfg       *searchConfig[N]
	neighbors func(N) []Neighbor[N]
	h         Heuristic[N]
	goal      N
	budget    int

	expanded int
}

func (l *leg[N]) run(start N) ([]N, int, error) {
	if l.cfg.match(start, l.goal) {
		return []N{start}, 0, nil
	}
	var (
		open = MinQueue[N]()
		// queued holds the frontier entry of nodes not yet expanded.
		queued = map[N]*PQI[N]{}
		g      = map[N]int{start: 0}
		from   = map[N]N{}
	)
	push := func(n N, cost int) error {
		est := l.h(n, l.goal)
		if est < 0 {
			est = 0
		}
		if est > MaxCost-cost {
			return ErrCostOverflow
		}
		if it, ok := queued[n]; ok {
			it.P = cost + est
			open.Update(it)
			return nil
		}
		it := &PQI[N]{V: n, P: cost + est}
		open.Push(it)
		queued[n] = it
		return nil
	}
	if err := push(start, 0); err != nil {
		return nil, 0, err
	}

	for open.Len() > 0 {
		cur := open.Pop().V
		delete(queued, cur)
		if l.cfg.match(cur, l.goal) {
			return reconstructPath(from, start, cur), g[cur], nil
		}
		if l.cfg.maxExpansions > 0 && l.expanded >= l.budget {
			return nil, 0, ErrSearchLimit
		}
		l.expanded++
		gc := g[cur]
		for _, nb := range l.neighbors(cur) {
			if nb.Cost < 0 {
				return nil, 0, fmt.Errorf("%w: negative cost %d from %v to %v", ErrInvalidInput, nb.Cost, cur, nb.Node)
			}
			if nb.Cost > MaxCost-gc {
				return nil, 0, ErrCostOverflow
			}
			tentative := gc + nb.Cost
			if old, ok := g[nb.Node]; ok && tentative >= old {
				continue
			}
			g[nb.Node] = tentative
			from[nb.Node] = cur
			if err := push(nb.Node, tentative); err != nil {
				return nil, 0, err
			}
		}
	}
	return nil, 0, ErrUnreachable
}

func reconstructPath[N comparable](from map[N]N, start, end N) []N {
	var s Stack[N]
	s.Push(end)
	for cur := end; cur != start; {
		cur = from[cur]
		s.Push(cur)
	}
	return s.Drain()
}
