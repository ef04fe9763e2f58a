package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/dfs"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// ExampleLongestPath walks the longest east/south route around a wall.
func ExampleLongestPath() {
	g, _ := grid.Parse("..#\n...", func(r rune) rune { return r })
	gg := gridgraph.Build(g, grid.Orthogonal, gridgraph.ClassifierFunc[rune, int](
		func(from, to grid.Cell[rune]) (int, bool) {
			open := from.Value != '#' && to.Value != '#'
			return 1, open && to.X >= from.X && to.Y >= from.Y
		}))

	path, _ := dfs.LongestPath(gg, grid.Coord{}, grid.Coord{X: 2, Y: 1})
	fmt.Println(len(path) - 1)
	// Output: 3
}
