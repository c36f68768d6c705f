package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkPushPop pushes 10k random items with decrease-keys, then drains.
func BenchmarkPushPop(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(42))
	items := make([]frontier.Item, n)
	for i := range items {
		items[i] = frontier.Item{
			At: grid.Coord{X: rng.Intn(200), Y: rng.Intn(200)},
			G:  rng.Intn(5000),
			H:  rng.Intn(1000),
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := frontier.New(n)
		for _, it := range items {
			f.Push(it.At, it.G, it.H)
		}
		for !f.IsEmpty() {
			_, _ = f.PopMin()
		}
	}
}
