// Package render draws a grid.Grid as text.
//
// Styles:
//
//   - StyleBoxes (default): every cell is a 9×3 box. Reached open cells show
//     "h g" on the first line and f on the third; walls are filled with '#',
//     the start and goal show 'A' and 'B', path cells are filled with '$'.
//     When a cost needs more than three digits, every box widens so columns
//     stay aligned.
//   - StyleCompact: one rune per cell, using the textmap runes plus '*' for
//     path cells, so an unsearched grid renders back into its own map.
//
// Rendering only reads the grid.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/textmap"
)

// Style selects the output layout.
type Style int

const (
	// StyleBoxes draws 9×3 boxes with costs, wider for large costs.
	StyleBoxes Style = iota
	// StyleCompact draws one rune per cell.
	StyleCompact
)

// PathRune marks a path cell in StyleCompact.
const PathRune = '*'

// ParseStyle maps "boxes" or "compact" to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "boxes", "":
		return StyleBoxes, nil
	case "compact":
		return StyleCompact, nil
	}
	return StyleBoxes, fmt.Errorf("render: unknown style %q", s)
}

// Options configures Render.
type Options struct {
	Style Style
}

// Option configures Render via functional arguments.
type Option func(*Options)

// WithStyle selects the output style.
func WithStyle(s Style) Option {
	return func(o *Options) {
		o.Style = s
	}
}

// minDigits is the narrowest cost field; three digits give the classic
// 9-rune box.
const minDigits = 3

// Render writes g to w.
func Render(w io.Writer, g *grid.Grid, opts ...Option) error {
	cfg := Options{Style: StyleBoxes}
	for _, opt := range opts {
		opt(&cfg)
	}
	bw := bufio.NewWriter(w)
	if cfg.Style == StyleCompact {
		compact(bw, g)
	} else {
		boxes(bw, g)
	}
	return bw.Flush()
}

// String returns the compact rendering of g.
func String(g *grid.Grid) string {
	var sb strings.Builder
	_ = Render(&sb, g, WithStyle(StyleCompact))
	return sb.String()
}

func compact(w *bufio.Writer, g *grid.Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell, _ := g.CellAt(x, y)
			w.WriteRune(compactRune(cell.Class))
		}
		w.WriteByte('\n')
	}
}

func compactRune(c grid.Class) rune {
	switch c {
	case grid.Wall:
		return textmap.WallRune
	case grid.Start:
		return textmap.StartRune
	case grid.Goal:
		return textmap.GoalRune
	case grid.Path:
		return PathRune
	}
	return textmap.OpenRune
}

func boxes(w *bufio.Writer, g *grid.Grid) {
	digits := costDigits(g)
	width := 2*digits + 3
	margin := len(fmt.Sprint(g.Height - 1))
	pad := strings.Repeat(" ", margin)
	border := pad + strings.Repeat("|"+strings.Repeat("-", width), g.Width) + "|\n"

	// column labels
	w.WriteString(pad)
	for x := 0; x < g.Width; x++ {
		label := fmt.Sprintf("-%02d", x)
		fmt.Fprintf(w, "|%s%s", label, strings.Repeat("-", max(width-len(label), 0)))
	}
	w.WriteString("|\n")
	w.WriteString(border)

	for y := 0; y < g.Height; y++ {
		var lines [3]strings.Builder
		fmt.Fprintf(&lines[0], "%*d", margin, y)
		lines[1].WriteString(pad)
		lines[2].WriteString(pad)
		for x := 0; x < g.Width; x++ {
			cell, _ := g.CellAt(x, y)
			b := box(cell, digits)
			for i := range lines {
				lines[i].WriteByte('|')
				lines[i].WriteString(b[i])
			}
		}
		for i := range lines {
			w.WriteString(lines[i].String())
			w.WriteString("|\n")
		}
		w.WriteString(border)
	}
}

// costDigits returns the field width that fits every cost shown on g.
func costDigits(g *grid.Grid) int {
	widest := 0
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		cell, _ := g.CellAt(c.X, c.Y)
		if cell.Class != grid.Normal || !cell.Reached {
			continue
		}
		widest = max(widest, cell.G, cell.H, cell.F())
	}
	return max(len(fmt.Sprint(widest)), minDigits)
}

// box returns the three lines of one cell, each 2*digits+3 runes wide.
func box(c grid.Cell, digits int) [3]string {
	width := 2*digits + 3
	fill := func(r string) string { return strings.Repeat(r, width) }
	marker := func(r string) string {
		side := strings.Repeat(" ", (width-1)/2)
		return side + r + side
	}
	switch c.Class {
	case grid.Wall:
		return [3]string{fill("#"), fill("#"), fill("#")}
	case grid.Start:
		return [3]string{fill("#"), marker("A"), fill("#")}
	case grid.Goal:
		return [3]string{fill("#"), marker("B"), fill("#")}
	case grid.Path:
		return [3]string{fill("$"), fill("$"), fill("$")}
	}
	if !c.Reached {
		return [3]string{fill(" "), fill(" "), fill(" ")}
	}
	left := (width - digits) / 2
	return [3]string{
		fmt.Sprintf(" %0*d %0*d ", digits, c.H, digits, c.G),
		fill(" "),
		strings.Repeat(" ", left) + fmt.Sprintf("%0*d", digits, c.F()) + strings.Repeat(" ", width-digits-left),
	}
}
