// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/solvekit/solvekit.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell position outside the grid dimensions.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrUnknownPosition indicates a sparse-grid write to a position that holds no cell.
	ErrUnknownPosition = errors.New("grid: position does not exist")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor offsets for the connectivity, as Points.
func (c Connectivity) offsets() []Point {
	if c == Conn8 {
		return []Point{
			{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
			{1, 0}, {1, -1}, {0, -1}, {-1, -1},
		}
	}

	return []Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Point identifies a grid cell by row and column. Points are plain
// comparable values, so they work directly as map keys and as elements of a
// disjoint set.
type Point struct {
	Row, Col int
}

// Add returns the point translated by o.
func (p Point) Add(o Point) Point {
	return Point{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// less orders points row-major: by row, then by column. Used wherever a
// deterministic cell order is promised.
func (p Point) less(o Point) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}

	return p.Col < o.Col
}
