package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// LongestPath returns a path from→to with the most edges in directed
// acyclic g. Ties keep the first predecessor in topological order.
func LongestPath[W any](g *gridgraph.Graph[W], from, to grid.Coord, opts ...Option) ([]grid.Coord, error) {
	order, err := TopologicalSort(g, opts...)
	if err != nil {
		return nil, err
	}
	for _, c := range [2]grid.Coord{from, to} {
		if !g.HasNode(c) {
			return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, c)
		}
	}

	dist := map[grid.Coord]int{from: 0}
	prev := make(map[grid.Coord]grid.Coord)
	for _, u := range order {
		du, ok := dist[u]
		if !ok {
			continue
		}
		for _, v := range g.Successors(u) {
			if dv, seen := dist[v]; !seen || du+1 > dv {
				dist[v] = du + 1
				prev[v] = u
			}
		}
	}
	if _, ok := dist[to]; !ok {
		return nil, fmt.Errorf("%w: %v to %v", ErrUnreachable, from, to)
	}

	path := []grid.Coord{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
