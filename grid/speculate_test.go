package grid_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
)

func edgeBeams(w, h int) []grid.Beam {
	var beams []grid.Beam
	for x := 0; x < w; x++ {
		beams = append(beams,
			grid.Beam{Pos: grid.Coord{X: x, Y: 0}, Dir: grid.South},
			grid.Beam{Pos: grid.Coord{X: x, Y: h - 1}, Dir: grid.North})
	}
	for y := 0; y < h; y++ {
		beams = append(beams,
			grid.Beam{Pos: grid.Coord{X: 0, Y: y}, Dir: grid.East},
			grid.Beam{Pos: grid.Coord{X: w - 1, Y: y}, Dir: grid.West})
	}
	return beams
}

func TestSpeculate_BestEntryBeam(t *testing.T) {
	g := mustParse(t, contraption)
	starts := edgeBeams(g.Width(), g.Height())

	counts, err := grid.Speculate(context.Background(), g, starts, 4,
		func(_ context.Context, scratch *grid.Grid[rune], b grid.Beam) (int, error) {
			trail, err := grid.Trace(scratch, b, mirrors)
			if err != nil {
				return 0, err
			}
			return trail.Cells(), nil
		})
	require.NoError(t, err)
	require.Len(t, counts, len(starts))
	assert.Equal(t, 51, slices.Max(counts))
	assert.Equal(t, 46, counts[slices.Index(starts, grid.Beam{Pos: grid.Coord{}, Dir: grid.East})])
}

func TestSpeculate_ClonesAreIndependent(t *testing.T) {
	g := mustParse(t, "....")
	xs := []int{0, 1, 2, 3}
	got, err := grid.Speculate(context.Background(), g, xs, 0,
		func(_ context.Context, scratch *grid.Grid[rune], x int) (int, error) {
			if err := scratch.Set(x, 0, '#'); err != nil {
				return 0, err
			}
			return grid.Count(scratch, '#'), nil
		})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, got)
	assert.Equal(t, 0, grid.Count(g, '#'), "original must stay untouched")
}

func TestSpeculate_FirstErrorWins(t *testing.T) {
	g := mustParse(t, "..")
	_, err := grid.Speculate(context.Background(), g, []int{0, 5}, 1,
		func(_ context.Context, scratch *grid.Grid[rune], x int) (rune, error) {
			return scratch.Get(x, 0)
		})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestSpeculate_CanceledContext(t *testing.T) {
	g := mustParse(t, "..")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	_, err := grid.Speculate(ctx, g, []int{0, 1}, 1,
		func(context.Context, *grid.Grid[rune], int) (int, error) {
			calls++
			return 0, nil
		})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, calls)
}
