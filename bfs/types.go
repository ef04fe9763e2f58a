package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start coordinate is not a node.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a node the search never reached.
	ErrUnreachable = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(at grid.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, next grid.Coord) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(grid.Coord, int) error { return nil },
		FilterNeighbor: func(_, _ grid.Coord) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(at grid.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, next grid.Coord) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: nodes in visit sequence.
//   - Depth: edge count from the start to each reached node.
//   - Parent: predecessor of each reached node except the start.
type Result struct {
	Start  grid.Coord
	Order  []grid.Coord
	Depth  map[grid.Coord]int
	Parent map[grid.Coord]grid.Coord
}

// PathTo reconstructs the path from the start to dest, both included.
func (r *Result) PathTo(dest grid.Coord) ([]grid.Coord, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	path := []grid.Coord{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// Farthest returns the first visited node of greatest depth.
func (r *Result) Farthest() (grid.Coord, int) {
	far, best := r.Start, 0
	for _, at := range r.Order {
		if d := r.Depth[at]; d > best {
			far, best = at, d
		}
	}
	return far, best
}
