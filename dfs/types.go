package dfs

import (
	"context"
	"errors"
)

const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is in the recursion stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUndirected is returned for graphs without one-way edges.
	ErrUndirected = errors.New("dfs: graph must be directed")

	// ErrCycleDetected indicates a directed cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNodeNotFound indicates an endpoint that is not a node.
	ErrNodeNotFound = errors.New("dfs: node not found")

	// ErrUnreachable indicates no path between the endpoints.
	ErrUnreachable = errors.New("dfs: no path")
)

// Option configures a depth-first run.
type Option func(*options)

type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a context checked at every node entry.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
