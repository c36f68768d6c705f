// Package grid defines coordinates, cell payloads, options and sentinel
// errors for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Unreached is the G value of a cell no search has reached yet.
// It is larger than any finite path cost on a grid that fits in memory.
const Unreached = math.MaxInt

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

// Coord is the identity of a cell.
type Coord struct {
	X, Y int
}

// String renders c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Class classifies a cell for traversal and display.
type Class uint8

const (
	// Normal is open terrain.
	Normal Class = iota
	// Wall is not traversable.
	Wall
	// Start marks the search origin.
	Start
	// Goal marks the search target.
	Goal
	// Path marks a cell on a retraced path.
	Path
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Normal:
		return "Normal"
	case Wall:
		return "Wall"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	case Path:
		return "Path"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Traversable reports whether a search may step onto a cell of this class.
func (c Class) Traversable() bool {
	return c != Wall
}

// Cell is the mutable state kept for one coordinate.
// G and H are meaningful only when Reached is true.
type Cell struct {
	Class   Class
	G       int   // cost from start along the best known path
	H       int   // heuristic estimate to goal
	Parent  Coord // predecessor on the best known path
	Reached bool  // set once a search has relaxed this cell
}

// F returns G+H.
func (c Cell) F() int {
	return c.G + c.H
}

// blank returns an unreached cell of the given class.
func blank(class Class) Cell {
	return Cell{Class: class, G: Unreached}
}

// Options contains tunable parameters for a Grid.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Option configures a Grid at construction.
type Option func(*Options)

// DefaultOptions returns Options with Conn=Conn8.
func DefaultOptions() Options {
	return Options{Conn: Conn8}
}

// WithConnectivity sets the neighbor connectivity.
func WithConnectivity(conn Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// Grid is a rectangular array of cells with optional start and goal markers.
// Width and Height are fixed at construction; cells are stored row-major.
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	cells           []Cell
	start, goal     Coord
	hasStart        bool
	hasGoal         bool
	neighborOffsets [][2]int
}
