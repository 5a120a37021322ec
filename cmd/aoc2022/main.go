package main

import (
	_ "embed"
	"log"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/internal/basin"
	"github.com/puzzlebox/aoc/internal/hill"
	"github.com/puzzlebox/aoc/internal/monkey"
	"github.com/puzzlebox/aoc/internal/volcano"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) troop() monkey.Troop {
	t, err := monkey.Parse(s.Text())
	if err != nil {
		log.Fatal(err)
	}
	return t
}

/*
want=10605

Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
*/
func (s solver) D11p1() any {
	return s.troop().Simulate(20, true)
}

// want=2713310158
func (s solver) D11p2() any {
	t := s.troop()
	for i, m := range t {
		s.Debugf("monkey %d: %v, divisible by %d", i, m.Op, m.Divisor)
	}
	return t.Simulate(10000, false)
}

func (s solver) hill() *hill.Map {
	return aoc.MustGet(hill.Parse(s.Text()))
}

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() any {
	n, err := s.hill().FewestSteps()
	if err != nil {
		log.Fatal(err)
	}
	return n
}

// want=29
func (s solver) D12p2() any {
	n, err := s.hill().BestStart()
	if err != nil {
		log.Fatal(err)
	}
	return n
}

func (s solver) network() *volcano.Network {
	var lines []string
	s.ForLines(func(line string) {
		lines = append(lines, line)
	})
	n, err := volcano.Parse(lines)
	if err != nil {
		log.Fatal(err)
	}
	return n
}

/*
want=1651

Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
*/
func (s solver) D16p1() any {
	return aoc.MustGet(s.network().MaxPressure("AA", 30))
}

// want=1707
func (s solver) D16p2() any {
	return aoc.MustGet(s.network().MaxPressurePair("AA", 26))
}

func (s solver) valley() *basin.Valley {
	v, err := basin.Parse(s.Text())
	if err != nil {
		log.Fatal(err)
	}
	s.Debugf("valley %v, blizzards repeat every %d minutes", v.Size, v.Period())
	return v
}

/*
want=18

#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
*/
func (s solver) D24p1() any {
	v := s.valley()
	res, err := v.Cross(v.End)
	if err != nil {
		log.Fatal(err)
	}
	return res.Cost
}

// want=54
func (s solver) D24p2() any {
	v := s.valley()
	res, err := v.Cross(v.End, v.Start, v.End)
	if err != nil {
		log.Fatal(err)
	}
	s.Debugf("legs: %v, expanded %d", res.Legs, res.Expanded)
	return res.Cost
}
