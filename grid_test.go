package aoc

import "testing"

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid("ab\r\ncd\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != (Pt{2, 2}) {
		t.Errorf("Size = %v, want {2 2}", g.Size())
	}
	if p, ok := Find(g, 'c'); !ok || p != (Pt{0, 1}) {
		t.Errorf("Find(c) = %v, %v; want {0 1}", p, ok)
	}
	if _, ok := Find(g, 'z'); ok {
		t.Error("Find(z) succeeded")
	}
	if v, ok := g.AtOk(Pt{2, 0}); ok {
		t.Errorf("AtOk({2 0}) = %q, want out of bounds", v)
	}
	for _, in := range []string{"", "\n", "ab\nc\n"} {
		if _, err := ParseGrid(in); err == nil {
			t.Errorf("ParseGrid(%q) succeeded; want error", in)
		}
	}
}

func TestStandardizePt(t *testing.T) {
	size := Pt{6, 4}
	tests := []struct {
		in, want Pt
	}{
		{Pt{0, 0}, Pt{0, 0}},
		{Pt{5, 3}, Pt{5, 3}},
		{Pt{6, 4}, Pt{0, 0}},
		{Pt{-1, 0}, Pt{5, 0}},
		{Pt{-7, -9}, Pt{5, 3}},
		{Pt{13, 2}, Pt{1, 2}},
	}
	for _, tt := range tests {
		if got := StandardizePt(tt.in, size); got != tt.want {
			t.Errorf("StandardizePt(%v, %v) = %v, want %v", tt.in, size, got, tt.want)
		}
	}
}

func TestGridHash(t *testing.T) {
	a := MakeGrid[uint8](3, 2)
	b := MakeGrid[uint8](3, 2)
	if a.Hash() != b.Hash() {
		t.Error("equal grids hash differently")
	}
	b.Set(Pt{2, 1}, 4)
	if a.Hash() == b.Hash() {
		t.Error("different grids hash the same")
	}
	a.Set(Pt{2, 1}, 4)
	if a.Hash() != b.Hash() {
		t.Error("equal grids hash differently after Set")
	}
}

func TestDirection(t *testing.T) {
	var sum Pt
	for _, d := range Directions {
		r := []rune(d.String())[0]
		got, ok := ParseDirection(r)
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", r, got, ok, d)
		}
		sum = sum.Add(d.Delta())
	}
	if sum != (Pt{}) {
		t.Errorf("deltas sum to %v, want zero", sum)
	}
	if _, ok := ParseDirection('x'); ok {
		t.Error("ParseDirection(x) succeeded")
	}
	if got := Down.Delta().Scale(3); got != (Pt{0, 3}) {
		t.Errorf("Down*3 = %v, want {0 3}", got)
	}
}

func TestNeighbors(t *testing.T) {
	p := Pt{2, 2}
	var all, immediate int
	p.ForNeighbors(func(q Pt) bool {
		all++
		if q.Sub(p).MDist(Pt{}) > 2 {
			t.Errorf("%v is not next to %v", q, p)
		}
		return true
	})
	p.ForImmediateNeighbors(func(q Pt) bool {
		immediate++
		if q.MDist(p) != 1 {
			t.Errorf("MDist(%v, %v) = %d, want 1", q, p, q.MDist(p))
		}
		return true
	})
	if all != 8 || immediate != 4 {
		t.Errorf("got %d neighbors and %d immediate, want 8 and 4", all, immediate)
	}
}
