package aoc

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// In reports whether p lies inside the grid.
func (g Grid[T]) In(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid parses a rectangular block of text into a grid of bytes.
// Blank trailing lines are ignored.
func ParseGrid(in string) (Grid[byte], error) {
	var g Grid[byte]
	for _, line := range strings.Split(strings.TrimRight(in, "\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		if len(g) > 0 && len(line) != len(g[0]) {
			return nil, fmt.Errorf("row %d has width %d; want %d", len(g), len(line), len(g[0]))
		}
		g = append(g, []byte(line))
	}
	if len(g) == 0 || len(g[0]) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	return g, nil
}

// Find returns the first point, scanning row by row, holding v.
func Find[T comparable](g Grid[T], v T) (Pt, bool) {
	for y, row := range g {
		for x, c := range row {
			if c == v {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a digest of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	hashersMu.Lock()
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every Direction in clockwise order from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

// Delta returns the unit step for d, with Y growing downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

// ParseDirection parses one of ^ > v <.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

// Scale multiplies both coordinates by k.
func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// StandardizePt wraps p into the rectangle [0,size).
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

// XY drops the Z coordinate.
func (p Pt3[T]) XY() Pt2[T] {
	return Pt2[T]{p.X, p.Y}
}
