// Package volcano models a network of pressure valves joined by tunnels and
// plans which valves to open before the volcano erupts.
package volcano

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/puzzlebox/aoc"
)

// Valve is a junction in the tunnel network.
type Valve struct {
	Name    string
	Rate    int
	Tunnels []string
}

type parser struct {
	rx *regexp.Regexp
}

func newParser() *parser {
	return &parser{
		rx: regexp.MustCompile(`^Valve ([A-Z]{2}) has flow rate=(\d+); tunnels? leads? to valves? (.*)$`),
	}
}

func (p *parser) parseValve(line string) (Valve, error) {
	m := p.rx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Valve{}, fmt.Errorf("unparsable valve: %q", line)
	}
	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return Valve{}, fmt.Errorf("valve %s: %w", m[1], err)
	}
	return Valve{
		Name:    m[1],
		Rate:    rate,
		Tunnels: strings.Split(m[3], ", "),
	}, nil
}

// Network is the parsed set of valves. Every tunnel takes one minute.
type Network struct {
	Valves map[string]Valve
	graph  aoc.Graph[string]
}

// Parse reads one valve per line. Blank lines are skipped.
func Parse(lines []string) (*Network, error) {
	p := newParser()
	n := &Network{Valves: map[string]Valve{}}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := p.parseValve(line)
		if err != nil {
			return nil, err
		}
		if _, dup := n.Valves[v.Name]; dup {
			return nil, fmt.Errorf("valve %s listed twice", v.Name)
		}
		n.Valves[v.Name] = v
		n.graph.AddNode(v.Name)
	}
	for _, v := range n.Valves {
		for _, t := range v.Tunnels {
			if _, ok := n.Valves[t]; !ok {
				return nil, fmt.Errorf("valve %s: tunnel to unknown valve %s", v.Name, t)
			}
			n.graph.AddEdge(v.Name, t, 1)
		}
	}
	return n, nil
}

// estimate is admissible: distinct valves are at least one tunnel apart, and
// at least two unless directly connected.
func (n *Network) estimate(from, to string) int {
	switch {
	case from == to:
		return 0
	case n.graph.Edges[from][to] > 0:
		return 1
	}
	return 2
}

// Distance returns the number of tunnels between two valves.
func (n *Network) Distance(from, to string) (int, error) {
	res, err := n.graph.ShortestPath(from, to, n.estimate)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// Routes returns the distance between every pair of the named valves, in
// both directions.
func (n *Network) Routes(names []string) (map[aoc.Edge[string]]int, error) {
	routes := make(map[aoc.Edge[string]]int, len(names)*len(names))
	for i, a := range names {
		for _, b := range names[i:] {
			d, err := n.Distance(a, b)
			if err != nil {
				return nil, fmt.Errorf("route %s-%s: %w", a, b, err)
			}
			routes[aoc.Edge[string]{A: a, B: b}] = d
			routes[aoc.Edge[string]{A: b, B: a}] = d
		}
	}
	return routes, nil
}

// RouteGraph returns the complete graph over all valves, weighted by the
// distance between them.
func (n *Network) RouteGraph() (*aoc.Graph[string], error) {
	names := n.graph.SortedNodes()
	routes, err := n.Routes(names)
	if err != nil {
		return nil, err
	}
	var g aoc.Graph[string]
	for e, d := range routes {
		if e.A != e.B {
			g.AddEdge(e.A, e.B, d)
		}
	}
	return &g, nil
}
