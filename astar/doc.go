// Package astar finds shortest paths on a grid.Grid with the A* algorithm
// and the octile heuristic, then retraces the parent chain into a path.
//
// Overview:
//
//   - FindPath seeds a frontier with the start cell, repeatedly pops the
//     cell with the lowest F = G + H, and relaxes its traversable, unclosed
//     neighbors with step cost grid.Octile (10 straight, 14 diagonal).
//   - The search ends when the goal is popped (Result.Found) or when the
//     frontier runs dry (Result.Found == false, err == nil). "No path" is a
//     normal outcome, not an error.
//   - Retrace walks Parent links from goal to start, marks the cells in
//     between as grid.Path and returns the path in start→goal order.
//
// Determinism:
//
//   - Neighbors are visited in the grid's documented clockwise order and the
//     frontier breaks F ties by lower H, then lower Y, then lower X, so two
//     runs over the same grid return the same path.
//   - FindPath resets the grid's search state first, so a grid that already
//     carries costs or a marked path can be searched again.
//
// State on the grid:
//
//   - Relaxed cells get G, H, Parent and Reached written back via SetCell;
//     unreached cells keep G == grid.Unreached. Renderers read these values.
//   - Every coordinate is expanded at most once; popped entries whose G no
//     longer matches the grid are skipped.
//
// Options:
//
//   - WithStart / WithGoal: override the grid's markers.
//   - WithMaxExpansions(n): stop with ErrBudgetExceeded after n expansions.
//   - WithContext(ctx): stop with the context error once ctx is done.
//   - WithOnExpand / WithOnRelax: observation hooks.
//
// Errors (sentinel):
//
//   - ErrInvalidInput:    nil grid, missing marker, endpoint out of bounds or on a wall.
//   - ErrOptionViolation: an Option received an invalid value.
//   - ErrBudgetExceeded:  the expansion budget ran out before the search ended.
//   - ErrBrokenChain:     a parent chain does not lead back to the start.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells; each cell is expanded at most once
//     and each relaxation costs one O(log N) heap operation.
//   - Space: O(N) for the closed set and frontier.
//
// Thread safety: FindPath mutates the grid and must not run concurrently with
// other users of the same grid. Search grid.Clone copies in parallel instead.
package astar
