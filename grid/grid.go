package grid

import (
	"fmt"
)

// New constructs a width×height Grid of unreached Normal cells.
// Returns ErrEmptyGrid if either dimension is below one.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, width, height)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank(Normal)
	}
	// Precompute neighbor offsets based on connectivity, clockwise from north.
	var offsets [][2]int
	if cfg.Conn == Conn4 {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	} else {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &Grid{
		Width:           width,
		Height:          height,
		Conn:            cfg.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether c lies within the grid boundaries.
func (g *Grid) Contains(c Coord) bool {
	return g.InBounds(c.X, c.Y)
}

// CellAt returns a copy of the cell at (x,y).
// Returns ErrOutOfBounds outside [0,W)×[0,H).
func (g *Grid) CellAt(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, g.outOfBounds(x, y)
	}
	return g.cells[g.index(x, y)], nil
}

// SetCell replaces the cell state at (x,y).
// Markers are not touched; use SetStart and SetGoal to move them.
func (g *Grid) SetCell(x, y int, cell Cell) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.cells[g.index(x, y)] = cell
	return nil
}

// SetClass changes only the class of the cell at (x,y).
func (g *Grid) SetClass(x, y int, class Class) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.cells[g.index(x, y)].Class = class
	return nil
}

// SetStart records (x,y) as the start and classifies it Start.
// A previous start cell that still carries the Start class reverts to Normal.
func (g *Grid) SetStart(x, y int) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	if g.hasStart {
		g.revert(g.start, Start)
	}
	g.start, g.hasStart = Coord{X: x, Y: y}, true
	g.cells[g.index(x, y)].Class = Start
	return nil
}

// SetGoal records (x,y) as the goal and classifies it Goal.
// A previous goal cell that still carries the Goal class reverts to Normal.
func (g *Grid) SetGoal(x, y int) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	if g.hasGoal {
		g.revert(g.goal, Goal)
	}
	g.goal, g.hasGoal = Coord{X: x, Y: y}, true
	g.cells[g.index(x, y)].Class = Goal
	return nil
}

// Start returns the start marker and whether one is set.
func (g *Grid) Start() (Coord, bool) {
	return g.start, g.hasStart
}

// Goal returns the goal marker and whether one is set.
func (g *Grid) Goal() (Coord, bool) {
	return g.goal, g.hasGoal
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Neighbors returns the in-bounds neighbors of c in NeighborOffsets order.
// c itself is never included. Walls are included; filtering by class is
// left to the caller.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		out = append(out, Coord{X: nx, Y: ny})
	}
	return out
}

// Reset clears all search state: costs, parents and Reached flags are
// dropped and Path cells turn back into Normal. Walls and markers survive.
// Complexity: O(W×H).
func (g *Grid) Reset() {
	for i, c := range g.cells {
		class := c.Class
		if class == Path {
			class = Normal
		}
		g.cells[i] = blank(class)
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	cp.neighborOffsets = make([][2]int, len(g.neighborOffsets))
	copy(cp.neighborOffsets, g.neighborOffsets)
	return &cp
}

// Len returns the number of cells, W×H.
func (g *Grid) Len() int {
	return len(g.cells)
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}

func (g *Grid) revert(c Coord, class Class) {
	i := g.index(c.X, c.Y)
	if g.cells[i].Class == class {
		g.cells[i].Class = Normal
	}
}

func (g *Grid) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) not in %d×%d", ErrOutOfBounds, x, y, g.Width, g.Height)
}
