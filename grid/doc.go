// Package grid stores a bounded 2D grid of cells for shortest-path search.
//
// What:
//
//   - Coord identifies a cell. It is the only key used for equality,
//     hashing, frontier membership and closed sets.
//   - Cell is the mutable payload kept per coordinate: class, accumulated
//     cost G, heuristic H, parent link and an explicit Reached flag.
//   - Grid owns Width×Height cells in row-major order together with the
//     optional start and goal markers.
//   - Octile returns the 10/14 integer distance between two coordinates.
//
// Why:
//
//   - Keeping identity (Coord) apart from the cost snapshot (Cell) means two
//     views of the same cell with different costs can never be confused.
//   - Unreached cells carry G == Unreached and Reached == false, so a zero
//     cost always means "really zero" (the start cell).
//
// Neighbor order:
//
//   - Conn8 (default): N, NE, E, SE, S, SW, W, NW, i.e. clockwise from north.
//   - Conn4: N, E, S, W.
//
// Out-of-bounds neighbors are dropped, so a corner cell has 3 neighbors
// under Conn8, an edge cell 5 and an interior cell 8.
//
// Complexity:
//
//   - New, Reset, Clone: O(W×H) time and memory.
//   - CellAt, SetCell, Neighbors, Octile: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one.
//   - ErrOutOfBounds: coordinate outside [0,W)×[0,H).
//
// A Grid is not safe for concurrent mutation. Use Clone to hand private
// copies to concurrent searches.
package grid
