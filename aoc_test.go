package aoc

import "testing"

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestExtractSamples(t *testing.T) {
	src := []byte(`package main

/*
want=7

1 2
3 4
*/
func (s solver) D1p1() any { return nil }

// want=9
func (s solver) D1p2() any { return nil }

// helper has no sample.
func helper() {}
`)
	got, err := extractSamples(src)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]sample{
		"D1p1": {want: "7", input: "1 2\n3 4\n"},
		"D1p2": {want: "9", input: "1 2\n3 4\n"},
	}
	if len(got) != len(want) {
		t.Fatalf("extractSamples = %v, want %v", got, want)
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("sample %s = %+v, want %+v", k, got[k], w)
		}
	}
	if _, err := extractSamples([]byte("not go")); err == nil {
		t.Error("extractSamples accepted invalid source")
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{4}, 4},
		{[]int{4, 6}, 12},
		{[]int{23, 19, 13, 17}, 96577},
		{[]int{5, 6, 4, 5, 4, 6}, 60},
	}
	for _, tt := range tests {
		if got := LCM(tt.in...); got != tt.want {
			t.Errorf("LCM(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "a", "b"); got != "a" {
		t.Errorf("Or = %q, want %q", got, "a")
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %v, want 0", got)
	}
}

func TestParallelMapFold(t *testing.T) {
	in := []int{1, 2, 3, 4}
	got := ParallelMapFold(in, func(v int) int { return v * v }, func(acc, v int) int { return acc + v }, 0)
	if got != 30 {
		t.Errorf("ParallelMapFold = %v, want 30", got)
	}
}
