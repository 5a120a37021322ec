package volcano

import (
	"fmt"
	"slices"

	"github.com/puzzlebox/aoc"
)

// planner enumerates every order of opening valves that fits in the time
// limit and records, for each set of opened valves, the most pressure that
// set can release.
type planner struct {
	useful []string
	rates  []int
	routes map[aoc.Edge[string]]int
	best   map[uint64]int
}

func (n *Network) newPlanner(start string) (*planner, error) {
	if _, ok := n.Valves[start]; !ok {
		return nil, fmt.Errorf("unknown start valve %s", start)
	}
	p := &planner{best: map[uint64]int{}}
	for _, name := range n.graph.SortedNodes() {
		if r := n.Valves[name].Rate; r > 0 {
			p.useful = append(p.useful, name)
			p.rates = append(p.rates, r)
		}
	}
	if len(p.useful) > 64 {
		return nil, fmt.Errorf("%d valves with flow; at most 64 supported", len(p.useful))
	}
	reach := n.graph.ReachableNodes(start)
	for _, name := range p.useful {
		if !reach[name] {
			return nil, fmt.Errorf("valve %s from %s: %w", name, start, aoc.ErrUnreachable)
		}
	}
	names := p.useful
	if !slices.Contains(names, start) {
		names = append([]string{start}, names...)
	}
	routes, err := n.Routes(names)
	if err != nil {
		return nil, err
	}
	p.routes = routes
	return p, nil
}

func (p *planner) walk(at string, left int, opened uint64, released int) {
	if v, ok := p.best[opened]; !ok || released > v {
		p.best[opened] = released
	}
	for i, name := range p.useful {
		if opened&(1<<i) != 0 {
			continue
		}
		t := left - p.routes[aoc.Edge[string]{A: at, B: name}] - 1
		if t <= 0 {
			continue
		}
		p.walk(name, t, opened|1<<i, released+t*p.rates[i])
	}
}

func (n *Network) plan(start string, minutes int) (map[uint64]int, error) {
	p, err := n.newPlanner(start)
	if err != nil {
		return nil, err
	}
	p.walk(start, minutes, 0, 0)
	return p.best, nil
}

// MaxPressure returns the most pressure one person starting at start can
// release in the given number of minutes. Moving through a tunnel and
// opening a valve each take a minute.
func (n *Network) MaxPressure(start string, minutes int) (int, error) {
	best, err := n.plan(start, minutes)
	if err != nil {
		return 0, err
	}
	most := 0
	for _, v := range best {
		most = max(most, v)
	}
	return most, nil
}

// MaxPressurePair is MaxPressure for two agents working in parallel; they
// never open the same valve.
func (n *Network) MaxPressurePair(start string, minutes int) (int, error) {
	best, err := n.plan(start, minutes)
	if err != nil {
		return 0, err
	}
	type set struct {
		mask     uint64
		released int
	}
	sets := make([]set, 0, len(best))
	for m, v := range best {
		sets = append(sets, set{m, v})
	}
	most := 0
	for i, a := range sets {
		for _, b := range sets[i:] {
			if a.mask&b.mask == 0 {
				most = max(most, a.released+b.released)
			}
		}
	}
	return most, nil
}
