// Package astar implements A* over grid.Grid.
//
// Notes on implementation choices:
//
//   - The frontier supports decrease-key, so a coordinate is never queued twice.
//     A popped entry is still checked against the grid and the closed set.
//   - "Not yet reached" is the Reached flag, never a zero G.
//   - Step cost and heuristic are both grid.Octile.
package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// FindPath runs A* on g from its start to its goal (or the endpoints given by
// WithStart/WithGoal) and returns the shortest path.
//
// Returns:
//
//   - Result{Found: true, Path, Cost, Expanded} when the goal is reached.
//     The path cells between start and goal are marked grid.Path on g.
//   - Result{Found: false, Expanded} and a nil error when no path exists.
//   - ErrInvalidInput, ErrOptionViolation, ErrBudgetExceeded, ErrBrokenChain
//     or a wrapped context error otherwise.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrInvalidInput).
//  3. Start and goal must be set, in bounds and not walls (ErrInvalidInput).
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H
//   - Space: O(N)
func FindPath(g *grid.Grid, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate grid
	if g == nil {
		return Result{}, fmt.Errorf("%w: grid is nil", ErrInvalidInput)
	}

	// 3) Resolve endpoints
	start, goal, err := endpoints(g, cfg)
	if err != nil {
		return Result{}, err
	}

	// 4) Drop state left over from a previous search, then run.
	g.Reset()
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		goal:    goal,
		open:    frontier.New(g.Len()),
		closed:  make(map[grid.Coord]struct{}, g.Len()),
	}
	if err = r.init(); err != nil {
		return Result{}, err
	}

	return r.process()
}

// endpoints resolves start and goal from options or grid markers and checks
// that both are usable.
func endpoints(g *grid.Grid, cfg Options) (start, goal grid.Coord, err error) {
	var ok bool
	if start, ok = cfg.Start, cfg.HasStart; !ok {
		start, ok = g.Start()
	}
	if !ok {
		return start, goal, fmt.Errorf("%w: grid has no start", ErrInvalidInput)
	}
	if goal, ok = cfg.Goal, cfg.HasGoal; !ok {
		goal, ok = g.Goal()
	}
	if !ok {
		return start, goal, fmt.Errorf("%w: grid has no goal", ErrInvalidInput)
	}

	for _, ep := range []struct {
		name string
		at   grid.Coord
	}{{"start", start}, {"goal", goal}} {
		cell, cerr := g.CellAt(ep.at.X, ep.at.Y)
		if cerr != nil {
			return start, goal, fmt.Errorf("%w: %s: %v", ErrInvalidInput, ep.name, cerr)
		}
		if !cell.Class.Traversable() {
			return start, goal, fmt.Errorf("%w: %s %v is a wall", ErrInvalidInput, ep.name, ep.at)
		}
	}

	return start, goal, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *grid.Grid              // searched grid; costs are written back into it
	options  Options                 // configuration (endpoints, budget, hooks)
	start    grid.Coord              // resolved start
	goal     grid.Coord              // resolved goal
	open     *frontier.Frontier      // open set with decrease-key
	closed   map[grid.Coord]struct{} // coordinates already expanded
	expanded int                     // number of closed coordinates
}

// init seeds the start cell with G=0 and pushes it into the frontier.
func (r *runner) init() error {
	cell, err := r.g.CellAt(r.start.X, r.start.Y)
	if err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}
	cell.G = 0
	cell.H = grid.Octile(r.start, r.goal)
	cell.Parent = r.start
	cell.Reached = true
	if err = r.g.SetCell(r.start.X, r.start.Y, cell); err != nil {
		return err
	}
	r.open.Push(r.start, cell.G, cell.H)

	return nil
}

// process is the main loop. It pops the cheapest frontier entry until the
// goal is popped or the frontier is empty.
//
// Loop termination conditions:
//
//   - The goal is popped: retrace and return Found.
//   - The frontier is empty: return not found.
//   - The budget is spent or the context is done: return an error.
func (r *runner) process() (Result, error) {
	for !r.open.IsEmpty() {
		if err := r.options.Ctx.Err(); err != nil {
			return r.partial(), fmt.Errorf("astar: search aborted: %w", err)
		}

		// 1) Pop the entry with the lowest F.
		item, err := r.open.PopMin()
		if err != nil {
			return r.partial(), err
		}
		cur, err := r.g.CellAt(item.At.X, item.At.Y)
		if err != nil {
			return r.partial(), err
		}

		// 2) Skip entries that are closed or no longer match the best known cost.
		if _, done := r.closed[item.At]; done || item.G != cur.G {
			continue
		}

		// 3) Goal popped: its G is final.
		if item.At == r.goal {
			path, err := Retrace(r.g, r.start, r.goal)
			if err != nil {
				return r.partial(), err
			}
			return Result{
				Found:    true,
				Path:     path,
				Cost:     cur.G,
				Expanded: r.expanded,
			}, nil
		}

		// 4) Respect the expansion budget before closing another cell.
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return r.partial(), fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, r.expanded)
		}

		// 5) Close and expand.
		r.closed[item.At] = struct{}{}
		r.expanded++
		r.options.OnExpand(item.At, cur)
		if err = r.relax(item.At, cur); err != nil {
			return r.partial(), err
		}
	}

	return r.partial(), nil
}

// relax offers every traversable, unclosed neighbor of at a path through at.
// A neighbor is updated when it was never reached or the new G is strictly
// lower; the updated cell is written back to the grid and pushed (or
// decreased) in the frontier.
func (r *runner) relax(at grid.Coord, cur grid.Cell) error {
	for _, nb := range r.g.Neighbors(at) {
		if _, done := r.closed[nb]; done {
			continue
		}
		cell, err := r.g.CellAt(nb.X, nb.Y)
		if err != nil {
			return fmt.Errorf("astar: neighbor %v of %v: %w", nb, at, err)
		}
		if !cell.Class.Traversable() {
			continue
		}

		tentative := cur.G + grid.Octile(at, nb)
		if cell.Reached && tentative >= cell.G {
			continue
		}

		cell.G = tentative
		cell.H = grid.Octile(nb, r.goal)
		cell.Parent = at
		cell.Reached = true
		if err = r.g.SetCell(nb.X, nb.Y, cell); err != nil {
			return err
		}
		r.open.Push(nb, cell.G, cell.H)
		r.options.OnRelax(at, nb, cell)
	}

	return nil
}

// partial is the result reported when the goal was not reached.
func (r *runner) partial() Result {
	return Result{Expanded: r.expanded}
}
