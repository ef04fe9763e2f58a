package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
)

func randomGrid(b *testing.B, n int) *grid.Grid[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	data := make([]int, n*n)
	for i := range data {
		data[i] = rng.Intn(5)
	}
	g, err := grid.FromSlice(n, n, data)
	if err != nil {
		b.Fatalf("setup FromSlice failed: %v", err)
	}
	return g
}

// BenchmarkBuildLookup measures the full reverse index on a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkBuildLookup(b *testing.B) {
	g := randomGrid(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.BuildLookup(g)
	}
}

// BenchmarkGetNeighbors resolves the neighborhood of every cell once per op.
// Complexity: O(W×H)
func BenchmarkGetNeighbors(b *testing.B) {
	g := randomGrid(b, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for c := range g.All() {
			_, _ = g.GetNeighbors(c.X, c.Y)
		}
	}
}

// BenchmarkCloneSet measures one speculative single-cell change.
// Complexity: O(W×H)
func BenchmarkCloneSet(b *testing.B) {
	g := randomGrid(b, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.CloneSet(150, 150, 9)
	}
}
