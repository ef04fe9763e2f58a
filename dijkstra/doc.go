// Package dijkstra computes single-source shortest paths over a weighted
// gridgraph.Graph with non-negative weights, such as heat-loss maps where
// entering a cell costs its digit.
//
// Overview:
//
//   - Dijkstra settles nodes in order of increasing distance using a
//     min-heap; Result.Dist holds every settled distance.
//   - WithReturnPath records predecessors so Result.PathTo can rebuild a path.
//   - WithMaxDistance caps the explored radius.
//   - WithInfEdgeThreshold marks heavy edges as walls.
//   - Weights may be any integer or float type (see Weight).
//
// Notes on implementation choices:
//
//   - All edges are scanned up front (O(E)) to fail fast on negative weights.
//   - Lazy decrease-key: improved distances push a new heap entry and stale
//     entries are skipped when popped.
//   - Equal distances pop in push order, so paths are reproducible.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrVertexNotFound   if the source is not a node of the graph.
//	– ErrNegativeWeight   if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0.
//	– ErrNoPath           from PathTo for an unreached node, or without WithReturnPath.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, start, dijkstra.WithReturnPath[int]())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist[goal])
package dijkstra
