// Package gridpath finds shortest paths on rectangular grid maps with A*.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid primitives: cells, coordinates, 4- and 8-connectivity
//		• A frontier: indexed min-heap with decrease-key and total tie-break order
//		• Search: A* with the octile heuristic, budgets, context and hooks
//		• Text maps: '#' wall, '.' open, 'A' start, 'B' goal
//		• Rendering: per-cell boxes with f/g/h, or a compact one-rune view
//		• Serving: an HTTP API with Prometheus metrics and a cobra CLI
//
// Everything is organized under these subpackages:
//
//	grid/      Grid, Cell, Coord, neighbor offsets & octile distance
//	frontier/  open set keyed by Coord
//	astar/     FindPath & Retrace
//	textmap/   map file parser
//	render/    text drawing of a searched grid
//	httpapi/   POST /v1/path, health & metrics
//	cmd/gridpath solve & serve commands
//
// Quick ASCII example:
//
//	A#..        A#..
//	.#..   →    *#..
//	...B        .**B
//
// costs 10 + 14 + 10 + 10 = 44 with diagonal moves allowed.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
