// Package dfs provides depth-first algorithms over a directed
// gridgraph.Graph: topological ordering with cycle detection, and the
// longest simple path through a DAG, e.g. the longest hike down a map of
// one-way slopes.
//
// Colors:
//
//	White – not visited yet.
//	Gray  – on the current recursion stack; reaching one again is a cycle.
//	Black – fully explored.
//
// Determinism:
//
//	Roots are taken in node order and successors in insertion order, so a
//	graph from gridgraph.Build always sorts the same way.
//
// Complexity:
//
//   - TopologicalSort: O(V + E) time, O(V) memory.
//   - LongestPath:     O(V + E) after sorting.
//
// Errors:
//
//   - ErrGraphNil       – nil graph.
//   - ErrUndirected     – the graph is undirected; every link would be a cycle.
//   - ErrCycleDetected  – a directed cycle exists.
//   - ErrNodeNotFound   – an endpoint of LongestPath is not a node.
//   - ErrUnreachable    – LongestPath found no route.
package dfs
