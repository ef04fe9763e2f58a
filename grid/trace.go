package grid

import "fmt"

// Beam is one traversal value of a trace: where it is and where it heads.
type Beam struct {
	Pos Coord
	Dir Direction
}

// Deflector decides where a beam goes after entering a cell holding v.
// Returning several directions splits the beam; none absorbs it.
type Deflector[T any] func(b Beam, v T) []Direction

// Trail is the set of beam states a trace visited.
type Trail struct {
	visited map[Beam]struct{}
	cells   map[Coord]struct{}
}

// Visited reports whether a beam was ever at b.Pos heading b.Dir.
func (t *Trail) Visited(b Beam) bool {
	_, ok := t.visited[b]
	return ok
}

// Touched reports whether any beam passed through c.
func (t *Trail) Touched(c Coord) bool {
	_, ok := t.cells[c]
	return ok
}

// Cells returns the number of distinct coordinates any beam passed through.
func (t *Trail) Cells() int { return len(t.cells) }

// Len returns the number of distinct (coordinate, direction) states visited.
func (t *Trail) Len() int { return len(t.visited) }

// Trace follows start and every beam split off it until each one leaves the
// grid, is absorbed, or repeats a state already visited. A start or deflected
// direction outside the 8 declared ones aborts the trace with
// ErrUnknownDirection.
//
// Live beams are plain values in one growable slice and all of them share a
// single visited set keyed by (coordinate, direction), so split branches need
// no identity of their own and loops terminate.
//
// Complexity: O(W×H×8) beam states at most.
func Trace[T any](g *Grid[T], start Beam, deflect Deflector[T]) (*Trail, error) {
	if err := g.Validate(start.Pos.X, start.Pos.Y); err != nil {
		return nil, err
	}
	if !start.Dir.Valid() {
		return nil, fmt.Errorf("%w: start heads %d", ErrUnknownDirection, start.Dir)
	}

	t := &Trail{
		visited: make(map[Beam]struct{}),
		cells:   make(map[Coord]struct{}),
	}
	arena := []Beam{start}
	for len(arena) > 0 {
		b := arena[len(arena)-1]
		arena = arena[:len(arena)-1]
		if !g.InBounds(b.Pos.X, b.Pos.Y) {
			continue
		}
		if _, seen := t.visited[b]; seen {
			continue
		}
		t.visited[b] = struct{}{}
		t.cells[b.Pos] = struct{}{}

		for _, d := range deflect(b, g.at(b.Pos)) {
			if !d.Valid() {
				return nil, fmt.Errorf("%w: deflected to %d at %v", ErrUnknownDirection, d, b.Pos)
			}
			arena = append(arena, Beam{Pos: b.Pos.Step(d), Dir: d})
		}
	}
	return t, nil
}
