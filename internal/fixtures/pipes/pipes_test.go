package pipes_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/bfs"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/katalvlaran/gridkit/internal/fixtures/pipes"
	"github.com/katalvlaran/gridkit/tile"
)

var openings = map[pipes.Pipe][]grid.Direction{
	pipes.Vertical:   {grid.North, grid.South},
	pipes.Horizontal: {grid.East, grid.West},
	pipes.NorthEast:  {grid.North, grid.East},
	pipes.NorthWest:  {grid.North, grid.West},
	pipes.SouthWest:  {grid.South, grid.West},
	pipes.SouthEast:  {grid.South, grid.East},
	pipes.Start:      {grid.North, grid.South, grid.East, grid.West},
}

func opens(p pipes.Pipe, d grid.Direction) bool {
	for _, o := range openings[p] {
		if o == d {
			return true
		}
	}
	return false
}

// connected links two pipes whose facing ends both open.
var connected = gridgraph.ClassifierFunc[pipes.Pipe, int](func(from, to grid.Cell[pipes.Pipe]) (int, bool) {
	for _, d := range grid.Orthogonal.Directions() {
		if from.Step(d) == to.Coord {
			return 1, opens(from.Value, d) && opens(to.Value, d.Opposite())
		}
	}
	return 0, false
})

func farthest(t *testing.T, text string) int {
	t.Helper()
	g, err := pipes.ParseGrid(text)
	require.NoError(t, err)
	start := grid.Lookup(g, pipes.Start)
	require.Len(t, start, 1)

	res, err := bfs.BFS(gridgraph.Build(g, grid.Orthogonal, connected), start[0])
	require.NoError(t, err)
	_, d := res.Farthest()
	return d
}

func TestFarthestOnLoop(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"square", ".....\n.S-7.\n.|.|.\n.L-J.\n.....", 4},
		{"winding", "..F7.\n.FJ|.\nSJ.L7\n|F--J\nLJ...", 8},
		{"noisy square", "-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, farthest(t, tc.text))
		})
	}
}

func TestUnknownPipe(t *testing.T) {
	_, err := pipes.ParseGrid("S-7\n|x|")
	require.ErrorIs(t, err, tile.ErrUnknownChar)

	var pe *tile.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 'x', pe.Char)
	assert.Equal(t, 1, pe.Row)
	assert.Equal(t, 1, pe.Col)
	assert.Equal(t, "pipes.Pipe", pe.Vocabulary)
	assert.Contains(t, pe.Site, "tiles_gen.go:")
}

func TestPipeDigitLikeChar(t *testing.T) {
	p, err := pipes.ParsePipe('7')
	require.NoError(t, err)
	assert.Equal(t, pipes.SouthWest, p)
	assert.Equal(t, "7", p.String())
}
