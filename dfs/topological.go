package dfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

type topoSorter[W any] struct {
	graph *gridgraph.Graph[W]
	opts  options
	state map[grid.Coord]int // White, Gray or Black
	order []grid.Coord       // post-order
}

// TopologicalSort returns the nodes of g so that every edge runs from an
// earlier node to a later one. It fails with ErrCycleDetected, naming the
// node where the cycle closed, if no such order exists.
func TopologicalSort[W any](g *gridgraph.Graph[W], opts ...Option) ([]grid.Coord, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodes := g.Nodes()
	s := &topoSorter[W]{
		graph: g,
		opts:  o,
		state: make(map[grid.Coord]int, len(nodes)),
		order: make([]grid.Coord, 0, len(nodes)),
	}
	for _, v := range nodes {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(s.order)

	return s.order, nil
}

func (s *topoSorter[W]) visit(at grid.Coord) error {
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	switch s.state[at] {
	case Gray:
		return fmt.Errorf("%w at %v", ErrCycleDetected, at)
	case Black:
		return nil
	}
	s.state[at] = Gray
	for _, next := range s.graph.Successors(at) {
		if err := s.visit(next); err != nil {
			return err
		}
	}
	s.state[at] = Black
	s.order = append(s.order, at)

	return nil
}

// HasCycle reports whether directed g contains a cycle.
func HasCycle[W any](g *gridgraph.Graph[W]) (bool, error) {
	_, err := TopologicalSort(g)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrCycleDetected):
		return true, nil
	default:
		return false, err
	}
}
