package grid

import (
	"os"
	"sort"
	"strings"
)

// SparseGrid is a point-keyed grid holding only the cells that exist.
// The cell set is fixed at construction: Set rewrites existing cells but
// refuses to invent new positions.
type SparseGrid[T comparable] struct {
	cells map[Point]T
}

// NewSparse constructs a SparseGrid from a point→value mapping.
// The mapping is copied; the grid owns its cells.
func NewSparse[T comparable](data map[Point]T) *SparseGrid[T] {
	cells := make(map[Point]T, len(data))
	for p, v := range data {
		cells[p] = v
	}

	return &SparseGrid[T]{cells: cells}
}

// ParseSparse builds a sparse string grid from raw text: one row per line,
// cells split on delim, each cell keyed by its (row, col) position. An empty
// delim splits each line into individual characters.
func ParseSparse(content, delim string) *SparseGrid[string] {
	cells := make(map[Point]string)
	for r, line := range strings.Split(strings.TrimSpace(content), "\n") {
		for c, cell := range strings.Split(strings.TrimSpace(line), delim) {
			cells[Point{Row: r, Col: c}] = cell
		}
	}

	return &SparseGrid[string]{cells: cells}
}

// ParseSparseFile builds a sparse string grid from the contents of the named file.
func ParseSparseFile(path, delim string) (*SparseGrid[string], error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseSparse(string(content), delim), nil
}

// FromGrid converts a dense grid into a sparse one, transforming each cell
// with f. Complexity: O(H×W).
func FromGrid[T, U comparable](g *Grid[T], f func(T) U) *SparseGrid[U] {
	h, w := g.Dimensions()
	cells := make(map[Point]U, h*w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cells[Point{Row: r, Col: c}] = f(g.cells[r][c])
		}
	}

	return &SparseGrid[U]{cells: cells}
}

// At returns the cell value at p and reports whether p holds a cell.
func (sg *SparseGrid[T]) At(p Point) (T, bool) {
	v, ok := sg.cells[p]
	return v, ok
}

// Set rewrites the cell at p, or returns ErrUnknownPosition when p holds no
// cell — a sparse grid never grows on write.
func (sg *SparseGrid[T]) Set(p Point, v T) error {
	if _, ok := sg.cells[p]; !ok {
		return ErrUnknownPosition
	}
	sg.cells[p] = v

	return nil
}

// Len returns the number of cells.
func (sg *SparseGrid[T]) Len() int {
	return len(sg.cells)
}

// Points returns every cell position in row-major order.
func (sg *SparseGrid[T]) Points() []Point {
	points := make([]Point, 0, len(sg.cells))
	for p := range sg.cells {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].less(points[j]) })

	return points
}

// Neighbours returns the neighbor positions of p, under the given
// connectivity, that actually hold cells. Clockwise from north.
func (sg *SparseGrid[T]) Neighbours(p Point, conn Connectivity) []Point {
	offsets := conn.offsets()
	res := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		n := p.Add(d)
		if _, ok := sg.cells[n]; ok {
			res = append(res, n)
		}
	}

	return res
}

// Find returns the position of the first cell equal to v in row-major order,
// and reports whether any was found.
func (sg *SparseGrid[T]) Find(v T) (Point, bool) {
	for _, p := range sg.Points() {
		if sg.cells[p] == v {
			return p, true
		}
	}

	return Point{}, false
}

// FindAll returns the positions of every cell equal to v, in row-major order.
func (sg *SparseGrid[T]) FindAll(v T) []Point {
	var res []Point
	for _, p := range sg.Points() {
		if sg.cells[p] == v {
			res = append(res, p)
		}
	}

	return res
}

// Count returns the number of cells equal to v.
func (sg *SparseGrid[T]) Count(v T) int {
	n := 0
	for _, cell := range sg.cells {
		if cell == v {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of the sparse grid.
func (sg *SparseGrid[T]) Clone() *SparseGrid[T] {
	return NewSparse(sg.cells)
}

// MapSparse returns a new sparse grid with f applied to every cell.
// A package function rather than a method so the result may have a different
// cell type.
func MapSparse[T, U comparable](sg *SparseGrid[T], f func(T) U) *SparseGrid[U] {
	cells := make(map[Point]U, len(sg.cells))
	for p, v := range sg.cells {
		cells[p] = f(v)
	}

	return &SparseGrid[U]{cells: cells}
}
