package gridgraph

import "github.com/katalvlaran/gridkit/grid"

// Classifier decides whether an edge runs from one cell to a neighboring
// cell and, if so, with what weight. Implementations must be pure.
type Classifier[T, W any] interface {
	Classify(from, to grid.Cell[T]) (W, bool)
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc[T, W any] func(from, to grid.Cell[T]) (W, bool)

// Classify calls f(from, to).
func (f ClassifierFunc[T, W]) Classify(from, to grid.Cell[T]) (W, bool) {
	return f(from, to)
}

// SameValue connects neighbors holding equal values with weight w.
func SameValue[T comparable, W any](w W) ClassifierFunc[T, W] {
	return func(from, to grid.Cell[T]) (W, bool) {
		return w, from.Value == to.Value
	}
}

// Edge is one arc (or undirected link) of a Graph.
type Edge[W any] struct {
	From, To grid.Coord
	Weight   W
}

// Options holds graph and builder settings.
type Options struct {
	// Directed selects one-way arcs (true) or undirected links (false).
	Directed bool
	// Wrapping makes Build resolve neighbors on a torus.
	Wrapping bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Directed=true, Wrapping=false.
func DefaultOptions() Options {
	return Options{Directed: true}
}

// WithDirected sets edge directedness.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithWrapping makes Build connect cells across opposite edges.
func WithWrapping() Option {
	return func(o *Options) { o.Wrapping = true }
}

// arc is the storage key of an edge. Undirected links are stored once,
// under their normalized endpoint order.
type arc struct {
	from, to grid.Coord
}

// Graph is a coordinate-keyed graph. It is not safe for concurrent mutation.
type Graph[W any] struct {
	directed bool
	nodes    []grid.Coord
	known    map[grid.Coord]struct{}
	out      map[grid.Coord][]grid.Coord
	weights  map[arc]W
	order    []arc
}
