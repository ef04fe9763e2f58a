package grid

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// Parse builds a grid from text, one line per row and one rune per column,
// mapping every rune through mapFn. A trailing newline and CRLF line endings
// are accepted. Empty input returns ErrEmptyGrid; rows of differing length
// return an error wrapping ErrRaggedInput.
// Complexity: O(W×H).
func Parse[T any](text string, mapFn func(r rune) T) (*Grid[T], error) {
	return ParseFunc(text, func(r rune, _ Coord) (T, error) {
		return mapFn(r), nil
	})
}

// ParseFunc is Parse with a fallible mapper that also sees the cell position.
// The first mapper error aborts the scan and is returned unchanged.
// Complexity: O(W×H).
func ParseFunc[T any](text string, mapFn func(r rune, at Coord) (T, error)) (*Grid[T], error) {
	rows := splitRows(text)
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	data := make([]T, 0, width*len(rows))
	for y, line := range rows {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedInput, y, n, width)
		}
		x := 0
		for _, r := range line {
			v, err := mapFn(r, Coord{X: x, Y: y})
			if err != nil {
				return nil, err
			}
			data = append(data, v)
			x++
		}
	}

	return &Grid[T]{data: data, width: width, height: len(rows)}, nil
}

// splitRows cuts text into lines, dropping one trailing newline and any
// carriage returns that precede a newline.
func splitRows(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" {
		return nil
	}
	rows := strings.Split(text, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSuffix(row, "\r")
	}
	return rows
}

// New returns a width×height grid with every cell set to fill.
func New[T any](width, height int, fill T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	data := make([]T, width*height)
	for i := range data {
		data[i] = fill
	}
	return &Grid[T]{data: data, width: width, height: height}, nil
}

// FromSlice wraps row-major data as a width×height grid. The slice is copied.
func FromSlice[T any](width, height int, data []T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: len %d, want %d×%d", ErrBadDimensions, len(data), width, height)
	}
	return &Grid[T]{data: slices.Clone(data), width: width, height: height}, nil
}

// Width is the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len is Width()*Height().
func (g *Grid[T]) Len() int { return len(g.data) }

// Index maps (x,y) to its row-major storage offset: y*Width + x.
// It does not validate; pair it with Validate for untrusted input.
// Complexity: O(1).
func (g *Grid[T]) Index(x, y int) int {
	return y*g.width + x
}

// ReverseIndex converts a row-major offset back to a coordinate.
// Complexity: O(1).
func (g *Grid[T]) ReverseIndex(i int) Coord {
	return Coord{X: i % g.width, Y: i / g.width}
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Validate returns a *BoundsError when (x,y) is outside the grid.
// The x axis is checked first.
func (g *Grid[T]) Validate(x, y int) error {
	if x < 0 || x >= g.width {
		return &BoundsError{Axis: AxisX, Index: x, Width: g.width, Height: g.height}
	}
	if y < 0 || y >= g.height {
		return &BoundsError{Axis: AxisY, Index: y, Width: g.width, Height: g.height}
	}
	return nil
}

// Get returns the value at (x,y).
func (g *Grid[T]) Get(x, y int) (T, error) {
	if err := g.Validate(x, y); err != nil {
		var zero T
		return zero, err
	}
	return g.at(Coord{X: x, Y: y}), nil
}

// Set stores v at (x,y).
func (g *Grid[T]) Set(x, y int, v T) error {
	if err := g.Validate(x, y); err != nil {
		return err
	}
	g.put(Coord{X: x, Y: y}, v)
	return nil
}

// ReplaceAt stores f(current) at (x,y).
func (g *Grid[T]) ReplaceAt(x, y int, f func(T) T) error {
	if err := g.Validate(x, y); err != nil {
		return err
	}
	c := Coord{X: x, Y: y}
	g.put(c, f(g.at(c)))
	return nil
}

// at and put skip validation. Callers only pass coordinates produced by the
// grid itself (row-major enumeration, ray steps, resolved neighbors).
func (g *Grid[T]) at(c Coord) T     { return g.data[g.Index(c.X, c.Y)] }
func (g *Grid[T]) put(c Coord, v T) { g.data[g.Index(c.X, c.Y)] = v }

// All yields every (coordinate, value) pair in row-major order.
// The sequence is lazy and can be ranged over any number of times.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, v := range g.data {
			if !yield(g.ReverseIndex(i), v) {
				return
			}
		}
	}
}

// Rows yields each row index with a view of that row's storage.
// The views alias the grid; appending to one never spills into the next row.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < g.height; y++ {
			start, end := y*g.width, (y+1)*g.width
			if !yield(y, g.data[start:end:end]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of g.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{data: slices.Clone(g.data), width: g.width, height: g.height}
}

// CloneSet returns a copy of g with (x,y) set to v. g is left untouched.
func (g *Grid[T]) CloneSet(x, y int, v T) (*Grid[T], error) {
	if err := g.Validate(x, y); err != nil {
		return nil, err
	}
	c := g.Clone()
	c.put(Coord{X: x, Y: y}, v)
	return c, nil
}

// CloneReplaceAt returns a copy of g with (x,y) set to f(current).
// g is left untouched.
func (g *Grid[T]) CloneReplaceAt(x, y int, f func(T) T) (*Grid[T], error) {
	if err := g.Validate(x, y); err != nil {
		return nil, err
	}
	c := g.Clone()
	at := Coord{X: x, Y: y}
	c.put(at, f(c.at(at)))
	return c, nil
}

// Equal reports whether a and b have the same dimensions and contents.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.width == b.width && a.height == b.height && slices.Equal(a.data, b.data)
}
