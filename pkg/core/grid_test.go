package core

import (
	"slices"
	"testing"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(3, 4, 0)
	if s := g.Size(); s != (Size{Rows: 3, Cols: 4}) {
		t.Fatalf("size = %+v", s)
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {3, 4}} {
		if _, ok := g.Get(p.Row, p.Col); ok {
			t.Fatalf("Get(%d,%d) reported a cell", p.Row, p.Col)
		}
		if g.At(p.Row, p.Col) != nil {
			t.Fatalf("At(%d,%d) returned a pointer", p.Row, p.Col)
		}
		if g.Set(p.Row, p.Col, 1) {
			t.Fatalf("Set(%d,%d) reported a write", p.Row, p.Col)
		}
	}
	if !g.Set(2, 3, 7) {
		t.Fatal("Set(2,3) missed")
	}
	if v, ok := g.Get(2, 3); !ok || v != 7 {
		t.Fatalf("Get(2,3) = %d, %v", v, ok)
	}
	*g.At(0, 1) = 5
	if v, _ := g.Get(0, 1); v != 5 {
		t.Fatalf("write through At not visible, got %d", v)
	}
}

func TestGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3, false)
	if s := g.Size(); s != (Size{Rows: 1, Cols: 1}) {
		t.Fatalf("size = %+v, want 1x1", s)
	}
}

func TestGridAllRowMajor(t *testing.T) {
	g := NewGrid(2, 3, 0)
	n := 0
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			g.Set(row, col, n)
			n++
		}
	}
	var pts []Point
	var vals []int
	for p, v := range g.All() {
		pts = append(pts, p)
		vals = append(vals, v)
	}
	wantPts := []Point{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if !slices.Equal(pts, wantPts) {
		t.Fatalf("points = %v", pts)
	}
	if !slices.Equal(vals, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("values = %v", vals)
	}

	// Restartable and stoppable.
	count := 0
	for range g.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("early break yielded %d values", count)
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := NewGrid(2, 2, "a")
	c := g.Clone()
	c.Set(0, 0, "b")
	if v, _ := g.Get(0, 0); v != "a" {
		t.Fatalf("clone write leaked into original: %q", v)
	}
}

func TestGridNeighbors(t *testing.T) {
	g := NewGrid(3, 3, 1)
	cases := []struct {
		p    Point
		want int
	}{
		{Point{0, 0}, 3},
		{Point{0, 1}, 5},
		{Point{1, 1}, 8},
		{Point{2, 2}, 3},
		{Point{2, 1}, 5},
	}
	for _, tc := range cases {
		n := 0
		for p := range g.Neighbors(tc.p.Row, tc.p.Col) {
			if !g.Size().Contains(p.Row, p.Col) {
				t.Fatalf("neighbor %v of %v is out of bounds", p, tc.p)
			}
			if p == tc.p {
				t.Fatalf("cell %v listed as its own neighbor", p)
			}
			n++
		}
		if n != tc.want {
			t.Fatalf("neighbors of %v = %d, want %d", tc.p, n, tc.want)
		}
	}
}
