package grid

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Grid is a dense, rectangular 2-D grid of comparable cell values.
// Construction deep-copies the input; all mutation goes through Set.
type Grid[T comparable] struct {
	cells         [][]T
	height, width int
}

// New constructs a Grid from a non-empty, rectangular 2-D slice.
// It deep-copies the input to ensure the grid owns its cells.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H×W) time and memory.
func New[T comparable](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]T, w)
		copy(cells[r], values[r])
	}

	return &Grid[T]{cells: cells, height: h, width: w}, nil
}

// Parse builds a string grid from raw text: one row per line, cells split on
// delim. An empty delim splits each line into individual characters.
func Parse(content, delim string) (*Grid[string], error) {
	return ParseFunc(content, delim, func(cell string) (string, error) { return cell, nil })
}

// ParseFunc builds a grid from raw text, converting each cell with conv.
// One row per line, cells split on delim; an empty delim splits each line
// into individual characters. Conversion failures abort the parse.
func ParseFunc[T comparable](content, delim string, conv func(string) (T, error)) (*Grid[T], error) {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	rows := make([][]T, 0, len(lines))
	for _, line := range lines {
		raw := strings.Split(line, delim)
		row := make([]T, 0, len(raw))
		for _, cell := range raw {
			v, err := conv(cell)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// ParseFile builds a string grid from the contents of the named file.
func ParseFile(path, delim string) (*Grid[string], error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(string(content), delim)
}

// ParseFileFunc builds a converted grid from the contents of the named file.
func ParseFileFunc[T comparable](path, delim string, conv func(string) (T, error)) (*Grid[T], error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseFunc(string(content), delim, conv)
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Dimensions returns (height, width).
func (g *Grid[T]) Dimensions() (int, int) { return g.height, g.width }

// Len returns the number of rows, mirroring len() over the raw rows.
func (g *Grid[T]) Len() int { return g.height }

// InBounds reports whether p lies within the grid boundaries. Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell value at p, or ErrOutOfBounds.
func (g *Grid[T]) At(p Point) (T, error) {
	if !g.InBounds(p) {
		var zero T
		return zero, ErrOutOfBounds
	}

	return g.cells[p.Row][p.Col], nil
}

// Get returns the cell value at p, or def when p is out of bounds.
// The safe, never-failing companion of At.
func (g *Grid[T]) Get(p Point, def T) T {
	if !g.InBounds(p) {
		return def
	}

	return g.cells[p.Row][p.Col]
}

// Set writes v to the cell at p, or returns ErrOutOfBounds.
func (g *Grid[T]) Set(p Point, v T) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.cells[p.Row][p.Col] = v

	return nil
}

// Row returns a copy of row r, or ErrOutOfBounds.
func (g *Grid[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= g.height {
		return nil, ErrOutOfBounds
	}
	row := make([]T, g.width)
	copy(row, g.cells[r])

	return row, nil
}

// Col returns a copy of column c, or ErrOutOfBounds.
func (g *Grid[T]) Col(c int) ([]T, error) {
	if c < 0 || c >= g.width {
		return nil, ErrOutOfBounds
	}
	col := make([]T, g.height)
	for r := 0; r < g.height; r++ {
		col[r] = g.cells[r][c]
	}

	return col, nil
}

// Rows returns a deep copy of all rows, top to bottom.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for r := 0; r < g.height; r++ {
		rows[r] = make([]T, g.width)
		copy(rows[r], g.cells[r])
	}

	return rows
}

// Cols returns a deep copy of all columns, left to right (the transposed rows).
func (g *Grid[T]) Cols() [][]T {
	cols := make([][]T, g.width)
	for c := 0; c < g.width; c++ {
		col := make([]T, g.height)
		for r := 0; r < g.height; r++ {
			col[r] = g.cells[r][c]
		}
		cols[c] = col
	}

	return cols
}

// Transpose returns a new grid whose rows are this grid's columns.
func (g *Grid[T]) Transpose() *Grid[T] {
	return &Grid[T]{cells: g.Cols(), height: g.width, width: g.height}
}

// Find returns the position of the first cell equal to v, scanning row-major,
// and reports whether any was found.
func (g *Grid[T]) Find(v T) (Point, bool) {
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] == v {
				return Point{Row: r, Col: c}, true
			}
		}
	}

	return Point{}, false
}

// FindAll returns the positions of every cell equal to v, in row-major order.
func (g *Grid[T]) FindAll(v T) []Point {
	var res []Point
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] == v {
				res = append(res, Point{Row: r, Col: c})
			}
		}
	}

	return res
}

// Count returns the number of cells equal to v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] == v {
				n++
			}
		}
	}

	return n
}

// Neighbours returns the in-bounds neighbor positions of p under the given
// connectivity, clockwise from north. Complexity: O(1).
func (g *Grid[T]) Neighbours(p Point, conn Connectivity) []Point {
	offsets := conn.offsets()
	res := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		if n := p.Add(d); g.InBounds(n) {
			res = append(res, n)
		}
	}

	return res
}

// Flatten returns all cells in a single row-major slice.
func (g *Grid[T]) Flatten() []T {
	flat := make([]T, 0, g.height*g.width)
	for _, row := range g.cells {
		flat = append(flat, row...)
	}

	return flat
}

// Filter returns a new grid where cells failing the predicate are replaced
// by def.
func (g *Grid[T]) Filter(pred func(T) bool, def T) *Grid[T] {
	return Map(g, func(v T) T {
		if pred(v) {
			return v
		}
		return def
	})
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{cells: g.Rows(), height: g.height, width: g.width}
}

// String pretty-prints the grid: cells of a row concatenated, rows separated
// by newlines.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			fmt.Fprint(&sb, cell)
		}
	}

	return sb.String()
}

// Map returns a new grid with f applied to every cell.
// A package function rather than a method so the result may have a different
// cell type. Complexity: O(H×W).
func Map[T, U comparable](g *Grid[T], f func(T) U) *Grid[U] {
	h, w := g.Dimensions()
	cells := make([][]U, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]U, w)
		for c := 0; c < w; c++ {
			cells[r][c] = f(g.cells[r][c])
		}
	}

	return &Grid[U]{cells: cells, height: h, width: w}
}

// AsInts converts a string grid into an int grid, failing on the first cell
// that does not parse.
func AsInts(g *Grid[string]) (*Grid[int], error) {
	return mapErr(g, strconv.Atoi)
}

// AsFloats converts a string grid into a float64 grid, failing on the first
// cell that does not parse.
func AsFloats(g *Grid[string]) (*Grid[float64], error) {
	return mapErr(g, func(cell string) (float64, error) {
		return strconv.ParseFloat(cell, 64)
	})
}

// mapErr is Map with a fallible transform.
func mapErr[T, U comparable](g *Grid[T], f func(T) (U, error)) (*Grid[U], error) {
	h, w := g.Dimensions()
	cells := make([][]U, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]U, w)
		for c := 0; c < w; c++ {
			v, err := f(g.cells[r][c])
			if err != nil {
				return nil, err
			}
			cells[r][c] = v
		}
	}

	return &Grid[U]{cells: cells, height: h, width: w}, nil
}
