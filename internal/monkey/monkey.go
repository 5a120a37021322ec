// Package monkey simulates monkeys passing items between each other.
package monkey

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/puzzlebox/aoc"
)

// OpKind is the arithmetic a monkey applies to an item's worry level.
type OpKind int

const (
	OpAdd OpKind = iota
	OpMul
	OpSquare
)

// Operation is "new = old <op> operand". Operand is unused for OpSquare.
type Operation struct {
	Kind    OpKind
	Operand int
}

// Apply evaluates the operation on old.
func (o Operation) Apply(old int) int {
	switch o.Kind {
	case OpAdd:
		return old + o.Operand
	case OpMul:
		return old * o.Operand
	case OpSquare:
		return old * old
	}
	panic(fmt.Sprintf("bad op kind %d", o.Kind))
}

func (o Operation) String() string {
	switch o.Kind {
	case OpAdd:
		return "old + " + strconv.Itoa(o.Operand)
	case OpMul:
		return "old * " + strconv.Itoa(o.Operand)
	case OpSquare:
		return "old * old"
	}
	return "?"
}

func parseOperation(expr string) (Operation, error) {
	f := strings.Fields(expr)
	if len(f) != 3 || f[0] != "old" {
		return Operation{}, fmt.Errorf("bad operation %q", expr)
	}
	if f[2] == "old" {
		if f[1] != "*" {
			return Operation{}, fmt.Errorf("unsupported operation %q", expr)
		}
		return Operation{Kind: OpSquare}, nil
	}
	n, err := strconv.Atoi(f[2])
	if err != nil {
		return Operation{}, fmt.Errorf("bad operand in %q: %w", expr, err)
	}
	switch f[1] {
	case "+":
		return Operation{Kind: OpAdd, Operand: n}, nil
	case "*":
		return Operation{Kind: OpMul, Operand: n}, nil
	}
	return Operation{}, fmt.Errorf("unsupported operator in %q", expr)
}

// Monkey is one member of a Troop. Targets are indexes into the Troop.
type Monkey struct {
	Items   []int
	Op      Operation
	Divisor int
	IfTrue  int
	IfFalse int

	Inspected int
}

// Troop holds every monkey; a monkey is referred to by its index.
type Troop []Monkey

// Parse reads the monkey notes.
func Parse(in string) (Troop, error) {
	var t Troop
	field := func(line, prefix string) (string, bool) {
		return strings.CutPrefix(strings.TrimSpace(line), prefix)
	}
	atoi := func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}
	for i, line := range strings.Split(in, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if v, ok := field(line, "Monkey "); ok {
			n, err := atoi(strings.TrimSuffix(v, ":"))
			if err != nil || n != len(t) {
				return nil, fmt.Errorf("line %d: bad monkey header %q", i+1, line)
			}
			t = append(t, Monkey{})
			continue
		}
		if len(t) == 0 {
			return nil, fmt.Errorf("line %d: %q before any monkey", i+1, line)
		}
		cur := &t[len(t)-1]
		var err error
		if v, ok := field(line, "Starting items:"); ok {
			for _, s := range strings.Split(v, ",") {
				if strings.TrimSpace(s) == "" {
					continue
				}
				var n int
				if n, err = atoi(s); err != nil {
					break
				}
				cur.Items = append(cur.Items, n)
			}
		} else if v, ok := field(line, "Operation: new ="); ok {
			cur.Op, err = parseOperation(v)
		} else if v, ok := field(line, "Test: divisible by"); ok {
			cur.Divisor, err = atoi(v)
		} else if v, ok := field(line, "If true: throw to monkey"); ok {
			cur.IfTrue, err = atoi(v)
		} else if v, ok := field(line, "If false: throw to monkey"); ok {
			cur.IfFalse, err = atoi(v)
		} else {
			err = fmt.Errorf("unrecognized %q", line)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	for i, m := range t {
		if m.Divisor <= 0 {
			return nil, fmt.Errorf("monkey %d: missing divisor", i)
		}
		if m.IfTrue < 0 || m.IfTrue >= len(t) || m.IfFalse < 0 || m.IfFalse >= len(t) {
			return nil, fmt.Errorf("monkey %d: throws to unknown monkey", i)
		}
		if m.IfTrue == i || m.IfFalse == i {
			return nil, fmt.Errorf("monkey %d: throws to itself", i)
		}
	}
	return t, nil
}

// Clone returns a deep copy of the troop.
func (t Troop) Clone() Troop {
	out := slices.Clone(t)
	for i := range out {
		out[i].Items = slices.Clone(t[i].Items)
	}
	return out
}

// Round lets each monkey in turn inspect and throw all its items. With
// relief, worry levels are divided by three after inspection. Otherwise they
// are reduced modulo the LCM of all divisors, which leaves every test's
// outcome unchanged.
func (t Troop) Round(relief bool) {
	mod := t.modulus()
	for i := range t {
		m := &t[i]
		for _, item := range m.Items {
			w := m.Op.Apply(item)
			if relief {
				w /= 3
			} else {
				w %= mod
			}
			to := m.IfFalse
			if w%m.Divisor == 0 {
				to = m.IfTrue
			}
			t[to].Items = append(t[to].Items, w)
		}
		m.Inspected += len(m.Items)
		m.Items = m.Items[:0]
	}
}

func (t Troop) modulus() int {
	divs := make([]int, len(t))
	for i, m := range t {
		divs[i] = m.Divisor
	}
	return aoc.LCM(divs...)
}

// Business returns the product of the two highest inspection counts.
func (t Troop) Business() int {
	if len(t) < 2 {
		return 0
	}
	q := aoc.MaxQueue[int]()
	for i, m := range t {
		q.Push(&aoc.PQI[int]{V: i, P: m.Inspected})
	}
	top := q.Pop().P
	return top * q.Peek().P
}

// Simulate runs rounds on a copy of t and returns its Business.
func (t Troop) Simulate(rounds int, relief bool) int {
	c := t.Clone()
	for i := 0; i < rounds; i++ {
		c.Round(relief)
	}
	return c.Business()
}
