package aoc

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Graph is an undirected weighted graph. Keys are ordered so that
// traversals are deterministic.
type Graph[K constraints.Ordered] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
}

// SortedNodes returns the nodes in ascending order.
func (g *Graph[K]) SortedNodes() []K {
	ks := maps.Keys(g.Nodes)
	slices.Sort(ks)
	return ks
}

// Neighbors returns the edges out of a, sorted by neighbor key. It has the
// shape FindPath expects.
func (g *Graph[K]) Neighbors(a K) []Neighbor[K] {
	ks := maps.Keys(g.Edges[a])
	slices.Sort(ks)
	out := make([]Neighbor[K], 0, len(ks))
	for _, k := range ks {
		out = append(out, Neighbor[K]{Node: k, Cost: g.Edges[a][k]})
	}
	return out
}

// ShortestPath returns the cheapest route from a to b.
func (g *Graph[K]) ShortestPath(a, b K, h Heuristic[K]) (PathResult[K], error) {
	return FindPath(a, []K{b}, g.Neighbors, h, WithDomain(func(k K) bool { return g.Nodes[k] }))
}

// AllShortestPaths returns the distance between every pair of connected
// nodes, using Floyd–Warshall. Disconnected pairs are absent.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	nodes := g.SortedNodes()
	dist := map[key]int{}
	for _, k1 := range nodes {
		for _, k2 := range nodes {
			if k1 == k2 {
				dist[key{k1, k1}] = 0
			} else if v, ok := g.Edges[k1][k2]; ok {
				dist[key{k1, k2}] = v
			} else {
				dist[key{k1, k2}] = math.MaxInt
			}
		}
	}
	for _, via := range nodes {
		for _, k1 := range nodes {
			e1 := dist[key{k1, via}]
			if e1 == math.MaxInt {
				continue
			}
			for _, k2 := range nodes {
				e2 := dist[key{via, k2}]
				if e2 == math.MaxInt {
					continue
				}
				if e := e1 + e2; e < dist[key{k1, k2}] {
					dist[key{k1, k2}] = e
				}
			}
		}
	}
	maps.DeleteFunc(dist, func(_ key, v int) bool { return v == math.MaxInt })
	return dist
}

// ReachableNodes returns the nodes connected to a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

type Edge[T comparable] struct {
	A, B T
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
