package grid

import (
	"fmt"
	"iter"
)

// RaycastFrom yields the coordinates reached by repeatedly stepping (dx,dy)
// from c, starting with the cell next to c and stopping at the first step
// that would leave the grid. c itself is never yielded. A zero step yields
// nothing. The sequence is lazy and restartable.
// Complexity: O(max(W,H)) per full iteration.
func (g *Grid[T]) RaycastFrom(c Coord, dx, dy int) (iter.Seq[Coord], error) {
	if err := g.Validate(c.X, c.Y); err != nil {
		return nil, err
	}
	return func(yield func(Coord) bool) {
		if dx == 0 && dy == 0 {
			return
		}
		for cur := c.Add(dx, dy); g.InBounds(cur.X, cur.Y); cur = cur.Add(dx, dy) {
			if !yield(cur) {
				return
			}
		}
	}, nil
}

// Ray is RaycastFrom stepping towards d. An unknown d fails with
// ErrUnknownDirection.
func (g *Grid[T]) Ray(c Coord, d Direction) (iter.Seq[Coord], error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, d)
	}
	dx, dy := d.Delta()
	return g.RaycastFrom(c, dx, dy)
}

// SlideWhile moves the occupant of from along (dx,dy) as far as keep holds.
//
// The ray from `from` is walked while keep(coord, value) is true; the last
// such coordinate is the landing cell. When one exists the occupant of from is
// written there and from receives replacement. The landing coordinate and
// whether anything moved are returned; a blocked slide leaves g untouched.
//
// Complexity: O(max(W,H)).
func (g *Grid[T]) SlideWhile(from Coord, dx, dy int, keep func(at Coord, v T) bool, replacement T) (Coord, bool, error) {
	ray, err := g.RaycastFrom(from, dx, dy)
	if err != nil {
		return from, false, err
	}

	landing, moved := from, false
	for c := range ray {
		if !keep(c, g.at(c)) {
			break
		}
		landing, moved = c, true
	}
	if !moved {
		return from, false, nil
	}

	occupant := g.at(from)
	g.put(from, replacement)
	g.put(landing, occupant)
	return landing, true, nil
}
