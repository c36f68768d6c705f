// Package frontier implements the open set of an A* search: an indexed
// min-heap of grid coordinates with decrease-key.
//
// Ordering:
//
//   - Items leave the frontier by ascending F = G + H.
//   - Ties on F go to the lower H (the item believed closer to the goal),
//     then to the lower Y, then to the lower X.
//
// The order is total, so for a given sequence of pushes the sequence of pops
// is fully determined and does not depend on heap internals.
//
// Membership:
//
//   - Each coordinate appears at most once. Pushing a coordinate that is
//     already present updates it in place (heap.Fix) only if the new costs
//     order strictly before the stored ones; otherwise Push is a no-op.
//     Stale duplicates therefore never exist.
//
// Complexity:
//
//   - Push, PopMin: O(log N).
//   - Contains, Len, IsEmpty, Peek: O(1).
package frontier
