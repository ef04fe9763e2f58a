package dijkstra

import (
	"errors"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source is not a node of the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates a destination with no recorded path.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// Weight is the set of edge weight types Dijkstra can sum and compare.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Options configures the behavior of the Dijkstra algorithm.
type Options[W Weight] struct {
	ReturnPath       bool // Whether to record predecessors
	MaxDistance      W    // Maximum distance to settle; valid when HasMaxDistance
	HasMaxDistance   bool
	InfEdgeThreshold W // Weight at or above which edges are non-traversable
	HasInfThreshold  bool

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option[W Weight] func(*Options[W])

// WithReturnPath enables recording of predecessors in the result.
func WithReturnPath[W Weight]() Option[W] {
	return func(o *Options[W]) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed it are not explored.
// A negative value causes ErrBadMaxDistance.
func WithMaxDistance[W Weight](max W) Option[W] {
	return func(o *Options[W]) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance, o.HasMaxDistance = max, true
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Zero or a negative value causes ErrBadInfThreshold.
func WithInfEdgeThreshold[W Weight](threshold W) Option[W] {
	return func(o *Options[W]) {
		if threshold <= 0 {
			o.err = ErrBadInfThreshold
			return
		}
		o.InfEdgeThreshold, o.HasInfThreshold = threshold, true
	}
}

// Result holds settled distances and, with WithReturnPath, predecessors.
// Unreached nodes are absent from Dist.
type Result[W Weight] struct {
	Source grid.Coord
	Dist   map[grid.Coord]W
	Prev   map[grid.Coord]grid.Coord
}

// PathTo reconstructs the cheapest path from the source to dest.
func (r *Result[W]) PathTo(dest grid.Coord) ([]grid.Coord, error) {
	if _, ok := r.Dist[dest]; !ok || r.Prev == nil {
		return nil, ErrNoPath
	}
	path := []grid.Coord{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
