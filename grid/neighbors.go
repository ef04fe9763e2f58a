package grid

import "iter"

// Direction is one of the 8 compass offsets around a cell.
// The declaration order is the iteration order used everywhere in this module.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest

	numDirections = 8
)

var deltas = [numDirections][2]int{
	North:     {0, -1},
	South:     {0, 1},
	East:      {1, 0},
	West:      {-1, 0},
	NorthEast: {1, -1},
	NorthWest: {-1, -1},
	SouthEast: {1, 1},
	SouthWest: {-1, 1},
}

var directionNames = [numDirections]string{"N", "S", "E", "W", "NE", "NW", "SE", "SW"}

// Valid reports whether d is one of the 8 declared directions.
func (d Direction) Valid() bool { return d < numDirections }

// Delta returns the (dx, dy) step of d. Y grows downwards, so North is (0,-1).
// An unknown direction has the zero step.
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	default:
		return NorthEast
	}
}

func (d Direction) String() string {
	if d >= numDirections {
		return "?"
	}
	return directionNames[d]
}

// Relationship selects which of the 8 surrounding cells count as neighbors.
type Relationship uint8

const (
	// Orthogonal selects N, S, E, W.
	Orthogonal Relationship = iota
	// Diagonal selects NE, NW, SE, SW.
	Diagonal
	// Adjacent selects Orthogonal followed by Diagonal.
	Adjacent
)

var relationshipDirections = [...][]Direction{
	Orthogonal: {North, South, East, West},
	Diagonal:   {NorthEast, NorthWest, SouthEast, SouthWest},
	Adjacent:   {North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest},
}

// Valid reports whether r is Orthogonal, Diagonal or Adjacent.
func (r Relationship) Valid() bool { return int(r) < len(relationshipDirections) }

// Directions returns the directions of r in iteration order, or nil for an
// unknown r. The returned slice must not be modified.
func (r Relationship) Directions() []Direction {
	if !r.Valid() {
		return nil
	}
	return relationshipDirections[r]
}

func (r Relationship) String() string {
	switch r {
	case Orthogonal:
		return "orthogonal"
	case Diagonal:
		return "diagonal"
	case Adjacent:
		return "adjacent"
	default:
		return "?"
	}
}

// Neighbors holds up to 8 resolved coordinates, one per Direction.
type Neighbors struct {
	cells   [numDirections]Coord
	present [numDirections]bool
}

// Get returns the neighbor towards d, if it exists.
func (n Neighbors) Get(d Direction) (Coord, bool) {
	if !d.Valid() {
		return Coord{}, false
	}
	return n.cells[d], n.present[d]
}

// Iter yields the present neighbors selected by r, in r's fixed order.
func (n Neighbors) Iter(r Relationship) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, d := range r.Directions() {
			if !n.present[d] {
				continue
			}
			if !yield(n.cells[d]) {
				return
			}
		}
	}
}

// Slice collects Iter(r).
func (n Neighbors) Slice(r Relationship) []Coord {
	out := make([]Coord, 0, len(r.Directions()))
	for c := range n.Iter(r) {
		out = append(out, c)
	}
	return out
}

// GetNeighbors resolves the 8 neighbors of (x,y); those past an edge are absent.
// Complexity: O(1).
func (g *Grid[T]) GetNeighbors(x, y int) (Neighbors, error) {
	var n Neighbors
	if err := g.Validate(x, y); err != nil {
		return n, err
	}
	for d := Direction(0); d < numDirections; d++ {
		dx, dy := d.Delta()
		nx, ny := x+dx, y+dy
		if g.InBounds(nx, ny) {
			n.cells[d] = Coord{X: nx, Y: ny}
			n.present[d] = true
		}
	}
	return n, nil
}

// GetNeighborsWrapping resolves the 8 neighbors of (x,y) on a torus: steps
// past an edge re-enter from the opposite side, so every neighbor is present.
// Use Wrap to learn which repeated copy a step crossed into.
// Complexity: O(1).
func (g *Grid[T]) GetNeighborsWrapping(x, y int) (Neighbors, error) {
	var n Neighbors
	if err := g.Validate(x, y); err != nil {
		return n, err
	}
	for d := Direction(0); d < numDirections; d++ {
		dx, dy := d.Delta()
		n.cells[d], _ = g.Wrap(x+dx, y+dy)
		n.present[d] = true
	}
	return n, nil
}

// Wrap folds an arbitrary coordinate into the grid and reports the offset of
// the repeated copy it falls in. (-1,0) on a 5-wide grid is (4,0) in copy (-1,0).
func (g *Grid[T]) Wrap(x, y int) (at Coord, copyOffset Coord) {
	qx, rx := floorDivMod(x, g.width)
	qy, ry := floorDivMod(y, g.height)
	return Coord{X: rx, Y: ry}, Coord{X: qx, Y: qy}
}

func floorDivMod(a, n int) (q, r int) {
	q, r = a/n, a%n
	if r < 0 {
		q--
		r += n
	}
	return q, r
}
