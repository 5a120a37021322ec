package main

import (
	_ "embed"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/internal/almanac"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	a := aoc.MustGet(almanac.Parse(s.Text()))
	return aoc.MustGet(a.Lowest())
}

// want=46
func (s solver) D5p2() any {
	a := aoc.MustGet(almanac.Parse(s.Text()))
	for _, iv := range aoc.MustGet(a.SeedRanges()).Intervals() {
		s.Debugf("seeds %v: %d", iv, iv.Len())
	}
	return aoc.MustGet(a.LowestInRanges())
}
