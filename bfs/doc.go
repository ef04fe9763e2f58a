// Package bfs runs breadth-first search over a gridgraph.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start.
//   - Result carries Order, Depth and Parent; PathTo rebuilds a path and
//     Farthest reports the deepest node, e.g. the far side of a pipe loop.
//   - WithOnVisit may abort the search with an error.
//   - WithFilterNeighbor prunes individual edges.
//   - WithMaxDepth bounds the search (d>0) or disables the bound (d==0).
//
// Determinism
//
//	Successors are returned in insertion order, which for a graph from
//	gridgraph.Build is row-major then direction order, so the visit sequence
//	is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth map and Parent map.
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(64))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ctx error, or hook error
//	}
//	path, _ := res.PathTo(goal)
package bfs
