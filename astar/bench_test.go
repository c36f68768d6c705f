package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// benchmarkFindPath runs FindPath corner to corner on an n×n grid with the
// given wall density. Setup is excluded from timing.
func benchmarkFindPath(b *testing.B, n int, density float64) {
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if rng.Float64() < density {
				_ = g.SetClass(x, y, grid.Wall)
			}
		}
	}
	_ = g.SetStart(0, 0)
	_ = g.SetGoal(n-1, n-1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.FindPath(g); err != nil {
			b.Fatalf("FindPath failed: %v", err)
		}
	}
}

// BenchmarkFindPath_Open100 benchmarks an open 100×100 grid.
func BenchmarkFindPath_Open100(b *testing.B) { benchmarkFindPath(b, 100, 0) }

// BenchmarkFindPath_Maze100 benchmarks a 100×100 grid with 30% walls.
func BenchmarkFindPath_Maze100(b *testing.B) { benchmarkFindPath(b, 100, 0.3) }

// BenchmarkFindPath_Maze500 benchmarks a 500×500 grid with 30% walls.
func BenchmarkFindPath_Maze500(b *testing.B) { benchmarkFindPath(b, 500, 0.3) }
