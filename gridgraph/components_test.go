package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// land links two cells when both hold a nonzero digit.
var land = gridgraph.ClassifierFunc[rune, int](func(from, to grid.Cell[rune]) (int, bool) {
	return 1, from.Value != '0' && to.Value != '0'
})

// islandSizes returns the sorted sizes of the components made of land.
func islandSizes(g *grid.Grid[rune], comps [][]grid.Coord) []int {
	var sizes []int
	for _, comp := range comps {
		if v, _ := g.Get(comp[0].X, comp[0].Y); v != '0' {
			sizes = append(sizes, len(comp))
		}
	}
	sort.Ints(sizes)
	return sizes
}

// TestComponentsOrthogonal finds two islands in a 4×3 map:
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
func TestComponentsOrthogonal(t *testing.T) {
	g := mustParse(t, "0110\n1100\n0011")
	comps := gridgraph.Build(g, grid.Orthogonal, land).Components()

	// 6 water singletons and 2 islands.
	assert.Len(t, comps, 8)
	assert.Equal(t, []int{2, 4}, islandSizes(g, comps))
}

// TestComponentsAdjacent joins corner-touching cells of a 5×5 cross:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestComponentsAdjacent(t *testing.T) {
	g := mustParse(t, "10001\n01010\n00100\n01010\n10001")

	assert.Equal(t, []int{9}, islandSizes(g, gridgraph.Build(g, grid.Adjacent, land).Components()))
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1, 1},
		islandSizes(g, gridgraph.Build(g, grid.Orthogonal, land).Components()))
}

func TestComponentsIgnoreDirection(t *testing.T) {
	gg := gridgraph.New[int]()
	gg.AddNode(c(5, 5))
	gg.AddEdge(c(2, 0), c(1, 0), 1)
	gg.AddEdge(c(0, 0), c(1, 0), 1)

	comps := gg.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []grid.Coord{c(5, 5)}, comps[0])
	assert.ElementsMatch(t, []grid.Coord{c(0, 0), c(1, 0), c(2, 0)}, comps[1])
}

func TestComponentsOrder(t *testing.T) {
	g := mustParse(t, "ab\naa")
	comps := gridgraph.Build(g, grid.Orthogonal, gridgraph.SameValue[rune](1), gridgraph.WithDirected(false)).Components()

	require.Len(t, comps, 2)
	assert.Equal(t, []grid.Coord{c(0, 0), c(0, 1), c(1, 1)}, comps[0])
	assert.Equal(t, []grid.Coord{c(1, 0)}, comps[1])
}

func TestComponentsEmptyGraph(t *testing.T) {
	assert.Empty(t, gridgraph.New[int]().Components())
}
