// Package astar defines result types, configuration options and sentinel
// errors for the A* search.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrInvalidInput indicates a grid that cannot be searched: nil, without a
	// start or goal, or with an endpoint out of bounds or on a wall.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrOptionViolation indicates an Option received an invalid value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBudgetExceeded indicates the expansion budget ran out before the
	// goal was reached or the frontier was exhausted.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrBrokenChain indicates a parent chain that does not resolve to the
	// start within W×H steps. It signals a relaxation defect.
	ErrBrokenChain = errors.New("astar: broken parent chain")
)

// Result is the outcome of FindPath.
//
// Found == false with a nil error means the frontier was exhausted: no path
// exists. Path is nil in that case.
type Result struct {
	Found    bool         // goal reached
	Path     []grid.Coord // start→goal inclusive; nil unless Found
	Cost     int          // G of the goal; 0 unless Found
	Expanded int          // number of cells expanded (closed)
}

// Options configures FindPath.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Start and Goal override the grid markers when HasStart/HasGoal are set.
	Start, Goal       grid.Coord
	HasStart, HasGoal bool

	// MaxExpansions, if > 0, caps the number of expanded cells.
	// A value of 0 disables the cap.
	MaxExpansions int

	// OnExpand is called when a cell is closed, before its neighbors are relaxed.
	OnExpand func(at grid.Coord, cell grid.Cell)

	// OnRelax is called after a neighbor receives a better cost.
	OnRelax func(from, to grid.Coord, cell grid.Cell)

	// internal error recorded during option parsing
	err error
}

// Option configures FindPath via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// FindPath is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - grid markers as endpoints
//   - no expansion budget
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(grid.Coord, grid.Cell) {},
		OnRelax:  func(_, _ grid.Coord, _ grid.Cell) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart searches from c instead of the grid's start marker.
func WithStart(c grid.Coord) Option {
	return func(o *Options) {
		o.Start, o.HasStart = c, true
	}
}

// WithGoal searches towards c instead of the grid's goal marker.
func WithGoal(c grid.Coord) Option {
	return func(o *Options) {
		o.Goal, o.HasGoal = c, true
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0:  stop with ErrBudgetExceeded once n cells are expanded
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run when a cell is expanded.
func WithOnExpand(fn func(at grid.Coord, cell grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run when a neighbor's cost improves.
func WithOnRelax(fn func(from, to grid.Coord, cell grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
