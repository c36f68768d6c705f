package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Retrace follows Parent links on g from goal back to start and returns the
// path in start→goal order, both ends inclusive.
//
// Every cell strictly between start and goal whose class is Normal is marked
// grid.Path; start and goal keep their own class. Nothing is marked unless
// the whole chain resolves.
//
// Returns ErrBrokenChain if a link leaves the grid, points at a cell that was
// never reached, or the start is not met within W×H steps (cycle guard).
func Retrace(g *grid.Grid, start, goal grid.Coord) ([]grid.Coord, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrInvalidInput)
	}
	limit := g.Len()
	path := []grid.Coord{goal}
	for cur, steps := goal, 0; cur != start; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("%w: start %v not reached from %v within %d steps", ErrBrokenChain, start, goal, limit)
		}
		cell, err := g.CellAt(cur.X, cur.Y)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBrokenChain, err)
		}
		if !cell.Reached {
			return nil, fmt.Errorf("%w: %v was never reached", ErrBrokenChain, cur)
		}
		cur = cell.Parent
		path = append(path, cur)
	}

	// mark interior cells
	for i := 1; i < len(path)-1; i++ {
		at := path[i]
		cell, err := g.CellAt(at.X, at.Y)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBrokenChain, err)
		}
		if cell.Class != grid.Normal {
			continue
		}
		if err = g.SetClass(at.X, at.Y, grid.Path); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBrokenChain, err)
		}
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
