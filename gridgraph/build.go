package gridgraph

import "github.com/katalvlaran/gridkit/grid"

// Build turns g into a graph. Every coordinate becomes a node, in row-major
// order. For every cell and each neighbor selected by rel, in rel's fixed
// direction order, c.Classify(cell, neighbor) is called once; when it reports
// true the edge cell→neighbor is added with the returned weight. For
// undirected graphs a later classification of the same pair replaces the
// earlier weight. An unknown rel selects no neighbors, so the result has
// nodes but no edges.
//
// Complexity: O(W×H×|rel|) classifier calls.
func Build[T, W any](g *grid.Grid[T], rel grid.Relationship, c Classifier[T, W], opts ...Option) *Graph[W] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := New[W](opts...)
	for at := range g.All() {
		out.AddNode(at)
	}

	resolve := g.GetNeighbors
	if o.Wrapping {
		resolve = g.GetNeighborsWrapping
	}
	for at, v := range g.All() {
		// at comes from the grid itself, so neither lookup can fail.
		nbrs, _ := resolve(at.X, at.Y)
		from := grid.Cell[T]{Coord: at, Value: v}
		for nb := range nbrs.Iter(rel) {
			tv, _ := g.Get(nb.X, nb.Y)
			if w, ok := c.Classify(from, grid.Cell[T]{Coord: nb, Value: tv}); ok {
				out.AddEdge(at, nb, w)
			}
		}
	}
	return out
}
