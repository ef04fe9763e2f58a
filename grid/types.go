package grid

import "fmt"

// Coord is a cell position: X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// Add returns c shifted by (dx, dy). The result is not validated.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns c moved one cell towards d. The result is not validated.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell pairs a coordinate with the value stored there.
// Classifiers and predicates receive cells rather than bare values.
type Cell[T any] struct {
	Coord
	Value T
}

// Grid is a rectangular, row-major container of width×height values.
// The zero value is not usable; build one with Parse, ParseFunc, New or FromSlice.
type Grid[T any] struct {
	data   []T
	width  int
	height int
}
