package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// ExampleDijkstra routes around an expensive cell.
func ExampleDijkstra() {
	g, _ := grid.Parse("19\n11", func(r rune) rune { return r })
	gg := gridgraph.Build(g, grid.Orthogonal, gridgraph.ClassifierFunc[rune, int](
		func(_, to grid.Cell[rune]) (int, bool) { return int(to.Value - '0'), true },
	))

	res, _ := dijkstra.Dijkstra(gg, grid.Coord{}, dijkstra.WithReturnPath[int]())
	goal := grid.Coord{X: 1, Y: 1}
	path, _ := res.PathTo(goal)
	fmt.Println(res.Dist[goal], path)
	// Output:
	// 2 [(0,0) (0,1) (1,1)]
}
