package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

func c(x, y int) grid.Coord { return grid.Coord{X: x, Y: y} }

func TestFrontier_Empty(t *testing.T) {
	f := frontier.New(0)
	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Len())

	_, err := f.PopMin()
	assert.ErrorIs(t, err, frontier.ErrEmpty)
	_, err = f.Peek()
	assert.ErrorIs(t, err, frontier.ErrEmpty)
}

func TestFrontier_PopsByF(t *testing.T) {
	f := frontier.New(4)
	f.Push(c(0, 0), 30, 10) // F=40
	f.Push(c(1, 0), 10, 10) // F=20
	f.Push(c(2, 0), 20, 10) // F=30

	var got []grid.Coord
	for !f.IsEmpty() {
		it, err := f.PopMin()
		require.NoError(t, err)
		got = append(got, it.At)
	}
	assert.Equal(t, []grid.Coord{c(1, 0), c(2, 0), c(0, 0)}, got)
}

// TestFrontier_TieBreak pins the documented order: F, then H, then Y, then X.
func TestFrontier_TieBreak(t *testing.T) {
	f := frontier.New(4)
	f.Push(c(5, 5), 10, 30) // F=40 H=30
	f.Push(c(4, 1), 20, 20) // F=40 H=20 Y=1
	f.Push(c(3, 0), 20, 20) // F=40 H=20 Y=0 X=3
	f.Push(c(1, 0), 20, 20) // F=40 H=20 Y=0 X=1

	want := []grid.Coord{c(1, 0), c(3, 0), c(4, 1), c(5, 5)}
	for _, w := range want {
		it, err := f.PopMin()
		require.NoError(t, err)
		assert.Equal(t, w, it.At)
	}
}

func TestFrontier_DecreaseKey(t *testing.T) {
	f := frontier.New(4)
	require.True(t, f.Push(c(0, 0), 50, 10))
	require.True(t, f.Push(c(1, 1), 30, 10))

	// Better path to (0,0): updated in place, not duplicated.
	assert.True(t, f.Push(c(0, 0), 10, 10))
	assert.Equal(t, 2, f.Len())

	it, ok := f.Get(c(0, 0))
	require.True(t, ok)
	assert.Equal(t, 10, it.G)

	top, err := f.Peek()
	require.NoError(t, err)
	assert.Equal(t, c(0, 0), top.At)
}

func TestFrontier_WorseOrEqualPushIgnored(t *testing.T) {
	f := frontier.New(2)
	require.True(t, f.Push(c(2, 2), 20, 10))

	assert.False(t, f.Push(c(2, 2), 40, 10), "worse push must not change the frontier")
	assert.False(t, f.Push(c(2, 2), 20, 10), "equal push must not change the frontier")
	assert.Equal(t, 1, f.Len())

	it, err := f.PopMin()
	require.NoError(t, err)
	assert.Equal(t, 20, it.G)
	assert.True(t, f.IsEmpty(), "no stale duplicate may remain")
}

func TestFrontier_Contains(t *testing.T) {
	f := frontier.New(2)
	f.Push(c(1, 2), 0, 0)
	assert.True(t, f.Contains(c(1, 2)))
	assert.False(t, f.Contains(c(2, 1)))

	_, err := f.PopMin()
	require.NoError(t, err)
	assert.False(t, f.Contains(c(1, 2)), "popped coordinates leave the index")
}

// TestFrontier_RandomAgainstSort pushes random items with random decrease-keys
// and checks that pops come out in exactly the sorted order.
func TestFrontier_RandomAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := frontier.New(0)
	best := map[grid.Coord]frontier.Item{}

	for i := 0; i < 2000; i++ {
		at := c(rng.Intn(30), rng.Intn(30))
		it := frontier.Item{At: at, G: rng.Intn(500), H: rng.Intn(100)}
		f.Push(it.At, it.G, it.H)
		if old, ok := best[at]; !ok || it.Less(old) {
			best[at] = it
		}
	}

	want := make([]frontier.Item, 0, len(best))
	for _, it := range best {
		want = append(want, it)
	}
	sort.Slice(want, func(i, j int) bool { return want[i].Less(want[j]) })

	require.Equal(t, len(want), f.Len())
	for _, w := range want {
		got, err := f.PopMin()
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
	assert.True(t, f.IsEmpty())
}
