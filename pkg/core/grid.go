package core

import "iter"

// Grid stores a fixed-size 2D grid of cell values in row-major order.
// Coordinates outside [0,rows)×[0,cols) are absent; they never wrap.
type Grid[T any] struct {
	rows, cols int
	data       []T
}

// NewGrid allocates a grid with every cell set to fill. Non-positive
// dimensions are clamped to 1.
func NewGrid[T any](rows, cols int, fill T) *Grid[T] {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = fill
	}
	return &Grid[T]{rows: rows, cols: cols, data: data}
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

func (g *Grid[T]) index(row, col int) (int, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, false
	}
	return row*g.cols + col, true
}

// Get returns the value at (row, col) and whether the position exists.
func (g *Grid[T]) Get(row, col int) (T, bool) {
	idx, ok := g.index(row, col)
	if !ok {
		var zero T
		return zero, false
	}
	return g.data[idx], true
}

// At returns a pointer to the cell at (row, col), or nil when out of range.
func (g *Grid[T]) At(row, col int) *T {
	idx, ok := g.index(row, col)
	if !ok {
		return nil
	}
	return &g.data[idx]
}

// Set writes v at (row, col). It reports false for out-of-range positions.
func (g *Grid[T]) Set(row, col int, v T) bool {
	p := g.At(row, col)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// All yields every cell with its position in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.data {
			if !yield(Point{Row: i / g.cols, Col: i % g.cols}, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{rows: g.rows, cols: g.cols, data: data}
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// moore lists the offsets of the eight Moore neighbors.
var moore = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors yields the in-bounds Moore neighbors of (row, col). Edge and
// corner cells yield fewer than eight values.
func (g *Grid[T]) Neighbors(row, col int) iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for _, d := range moore {
			r, c := row+d.Row, col+d.Col
			v, ok := g.Get(r, c)
			if !ok {
				continue
			}
			if !yield(Point{Row: r, Col: c}, v) {
				return
			}
		}
	}
}
