// Package gridkit is a toolkit for the fixed-size 2D character grids that
// puzzle inputs and tile maps are made of.
//
// 🚀 What is gridkit?
//
//	A generic, pure-Go set of packages that brings together:
//		• Storage: row-major grids with bounds-checked access and cloning
//		• Neighbors: orthogonal and diagonal lookup, plain or wrapping
//		• Rays: walks, raycasts, slides and beam tracing
//		• Graphs: classify neighbor pairs into directed or undirected edges
//		• Traversals: BFS, DFS, topological order, Dijkstra
//		• Tiles: character↔variant vocabularies and a code generator
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/        Grid, Coord, Direction, neighbors, lookups, rays, Trace
//	gridgraph/   Graph built from a grid by a Classifier, Components
//	bfs/         breadth-first order, depths and parent links
//	dfs/         topological sort, cycle check, longest DAG path
//	dijkstra/    weighted shortest paths with distance caps
//	tile/        runtime Vocabulary for tile enums
//	cmd/tilegen  generator and inspector for tile vocabularies
//
// Quick start:
//
//	g, _ := grid.Parse(input, func(r rune) rune { return r })
//	gg := gridgraph.Build(g, grid.Orthogonal, gridgraph.SameValue[rune](1))
//	res, _ := bfs.BFS(gg, grid.Coord{})
//	far, depth := res.Farthest()
package gridkit
