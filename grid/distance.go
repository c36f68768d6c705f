package grid

// Step costs scaled by 10 so diagonal moves stay integral: 14 ≈ 10·√2.
const (
	StraightCost = 10
	DiagonalCost = 14
)

// Octile returns the octile distance between a and b:
//
//	10·max(dx,dy) + 4·min(dx,dy)  ==  14·min + 10·(max-min)
//
// It is the exact cost of the cheapest obstacle-free 8-connected walk, so it
// is admissible and consistent as an A* heuristic, and it equals the step
// cost between adjacent cells (10 straight, 14 diagonal).
func Octile(a, b Coord) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx < dy {
		dx, dy = dy, dx
	}
	return StraightCost*dx + (DiagonalCost-StraightCost)*dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
