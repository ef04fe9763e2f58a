package gridgraph

import (
	"slices"

	"github.com/katalvlaran/gridkit/grid"
)

// New returns an empty graph configured by opts.
func New[W any](opts ...Option) *Graph[W] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Graph[W]{
		directed: o.Directed,
		known:    make(map[grid.Coord]struct{}),
		out:      make(map[grid.Coord][]grid.Coord),
		weights:  make(map[arc]W),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph[W]) Directed() bool { return g.directed }

// AddNode inserts c and reports whether it was new.
// Complexity: O(1).
func (g *Graph[W]) AddNode(c grid.Coord) bool {
	if _, ok := g.known[c]; ok {
		return false
	}
	g.known[c] = struct{}{}
	g.nodes = append(g.nodes, c)
	return true
}

// AddEdge links from→to with weight w, inserting missing endpoints.
// An existing edge keeps its place and takes the new weight; the result
// reports whether the edge was new.
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(from, to grid.Coord, w W) bool {
	k := g.key(from, to)
	if _, ok := g.weights[k]; ok {
		g.weights[k] = w
		return false
	}
	g.AddNode(from)
	g.AddNode(to)
	g.weights[k] = w
	g.order = append(g.order, k)
	g.out[from] = append(g.out[from], to)
	if !g.directed && from != to {
		g.out[to] = append(g.out[to], from)
	}
	return true
}

func (g *Graph[W]) key(from, to grid.Coord) arc {
	if !g.directed && less(to, from) {
		from, to = to, from
	}
	return arc{from: from, to: to}
}

// less orders coordinates row-major.
func less(a, b grid.Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// HasNode reports whether c is a node.
func (g *Graph[W]) HasNode(c grid.Coord) bool {
	_, ok := g.known[c]
	return ok
}

// HasEdge reports whether from→to exists (either way round when undirected).
func (g *Graph[W]) HasEdge(from, to grid.Coord) bool {
	_, ok := g.weights[g.key(from, to)]
	return ok
}

// Weight returns the weight of from→to.
func (g *Graph[W]) Weight(from, to grid.Coord) (W, bool) {
	w, ok := g.weights[g.key(from, to)]
	return w, ok
}

// Successors returns the nodes reachable from c over one edge, in insertion
// order. For undirected graphs this is every linked node.
func (g *Graph[W]) Successors(c grid.Coord) []grid.Coord {
	return slices.Clone(g.out[c])
}

// Nodes returns every node in insertion order (row-major after Build).
func (g *Graph[W]) Nodes() []grid.Coord {
	return slices.Clone(g.nodes)
}

// Edges returns every edge in insertion order.
// Undirected links appear once, with From preceding To row-major.
func (g *Graph[W]) Edges() []Edge[W] {
	out := make([]Edge[W], 0, len(g.order))
	for _, k := range g.order {
		out = append(out, Edge[W]{From: k.from, To: k.to, Weight: g.weights[k]})
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[W]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges; an undirected link counts once.
func (g *Graph[W]) EdgeCount() int { return len(g.order) }
