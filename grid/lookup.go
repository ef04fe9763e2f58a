package grid

// BuildLookup indexes every value to the coordinates holding it, each list in
// row-major order. Every coordinate appears in exactly one list.
// Complexity: O(W×H) time and memory.
func BuildLookup[T comparable](g *Grid[T]) map[T][]Coord {
	index := make(map[T][]Coord)
	for c, v := range g.All() {
		index[v] = append(index[v], c)
	}
	return index
}

// Lookup returns the coordinates holding v in row-major order, or nil.
// It is BuildLookup(g)[v] without materializing the other values.
// Complexity: O(W×H).
func Lookup[T comparable](g *Grid[T], v T) []Coord {
	var out []Coord
	for i, cur := range g.data {
		if cur == v {
			out = append(out, g.ReverseIndex(i))
		}
	}
	return out
}

// Count returns how many cells hold v.
func Count[T comparable](g *Grid[T], v T) int {
	n := 0
	for _, cur := range g.data {
		if cur == v {
			n++
		}
	}
	return n
}
