// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors shows the clockwise-from-north neighbor order and how
// the grid border trims it.
// Complexity: O(1)
func ExampleGrid_Neighbors() {
	g, _ := grid.New(3, 3)

	fmt.Println("center:", g.Neighbors(grid.Coord{X: 1, Y: 1}))
	fmt.Println("corner:", g.Neighbors(grid.Coord{X: 0, Y: 0}))

	// Output:
	// center: [(1,0) (2,0) (2,1) (2,2) (1,2) (0,2) (0,1) (0,0)]
	// corner: [(1,0) (1,1) (0,1)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Octile
////////////////////////////////////////////////////////////////////////////////

// ExampleOctile compares straight, diagonal and mixed distances.
func ExampleOctile() {
	origin := grid.Coord{X: 0, Y: 0}
	fmt.Println(grid.Octile(origin, grid.Coord{X: 3, Y: 0}))
	fmt.Println(grid.Octile(origin, grid.Coord{X: 3, Y: 3}))
	fmt.Println(grid.Octile(origin, grid.Coord{X: 3, Y: 1}))

	// Output:
	// 30
	// 42
	// 34
}
