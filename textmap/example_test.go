package textmap_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/textmap"
)

// ExampleParseString reads a small map and reports its markers.
func ExampleParseString() {
	g, err := textmap.ParseString("A.#\n..B\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	start, _ := g.Start()
	goal, _ := g.Goal()
	fmt.Printf("%dx%d start=%v goal=%v\n", g.Width, g.Height, start, goal)
	// Output: 3x2 start=(0,0) goal=(2,1)
}
