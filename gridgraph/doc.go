// Package gridgraph builds node/edge graphs over a grid.Grid, keyed directly
// by grid coordinates.
//
// What:
//
//   - Build scans every cell and each of its neighbors under a
//     grid.Relationship, asking a caller-supplied Classifier whether an edge
//     exists and with which weight.
//   - Graph[W] stores nodes as grid.Coord values (no ID allocation), edges as
//     directed arcs or undirected links, with any weight type.
//   - Components reports weakly connected components in row-major seed order.
//
// Why:
//
//   - The builder holds no rule knowledge. "Pipes connect only if facing ends
//     align", "slopes are one-way" or "same-value cells connect" all live in
//     the classifier, so one traversal serves arbitrarily different
//     connectivity rules.
//
// Complexity:
//
//   - Build:      O(W×H×|rel|) classifier calls, Memory O(W×H + E).
//   - Components: O(V + E).
//
// Options:
//
//   - WithDirected(bool): directed arcs (default) or undirected links.
//   - WithWrapping():     resolve neighbors on a torus instead of dropping them.
//
// The builder does not memoize; an expensive classifier must cache itself.
package gridgraph
