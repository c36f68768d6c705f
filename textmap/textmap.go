// Package textmap builds a grid.Grid from a text map.
//
// Format, one line per row (line index = Y, rune index = X):
//
//	'#'  wall
//	'.'  open terrain
//	'A'  start marker
//	'B'  goal marker
//	any other rune is open terrain.
//
// Height is the number of lines and width the length of the longest line;
// shorter lines are padded with open terrain. A trailing '\r' is dropped so
// CRLF files read the same as LF files.
package textmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gridpath/grid"
)

// Map runes.
const (
	WallRune  = '#'
	OpenRune  = '.'
	StartRune = 'A'
	GoalRune  = 'B'
)

// Sentinel errors for map parsing.
var (
	// ErrEmptyMap indicates input without a single cell.
	ErrEmptyMap = errors.New("textmap: map has no cells")
	// ErrDuplicateMarker indicates a second start or goal marker.
	ErrDuplicateMarker = errors.New("textmap: duplicate marker")
	// ErrTooLarge indicates a map whose padded grid exceeds the cell limit.
	ErrTooLarge = errors.New("textmap: map too large")
)

// DefaultMaxCells is the cell limit used by Parse, ParseString and Load.
// Width is the longest line, so the limit applies to width×lines, not to
// the input size.
const DefaultMaxCells = 1 << 22

// Load reads the map file at path.
func Load(path string, opts ...grid.Option) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textmap: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// ParseString parses a map held in a string.
func ParseString(s string, opts ...grid.Option) (*grid.Grid, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads a map from r with the DefaultMaxCells limit. Missing markers
// are not an error here; the search reports them.
func Parse(r io.Reader, opts ...grid.Option) (*grid.Grid, error) {
	return ParseLimit(r, DefaultMaxCells, opts...)
}

// ParseLimit is Parse with an explicit cell limit. maxCells <= 0 disables
// the limit. The limit is checked while reading, so an oversized map fails
// with ErrTooLarge before the grid is allocated.
func ParseLimit(r io.Reader, maxCells int, opts ...grid.Option) (*grid.Grid, error) {
	// A line wider than maxCells runes can never fit, which bounds the
	// scanner buffer too.
	maxLine := math.MaxInt
	if maxCells > 0 && maxCells < (math.MaxInt-2)/utf8.UTFMax {
		maxLine = maxCells*utf8.UTFMax + 2
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	scanner.Split(bufio.ScanLines)

	var rows [][]rune
	width := 0
	for scanner.Scan() {
		line := []rune(strings.TrimSuffix(scanner.Text(), "\r"))
		if len(line) > width {
			width = len(line)
		}
		rows = append(rows, line)
		if maxCells > 0 && exceeds(width, len(rows), maxCells) {
			return nil, fmt.Errorf("%w: %d×%d or more, limit %d cells", ErrTooLarge, width, len(rows), maxCells)
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d wider than %d cells", ErrTooLarge, len(rows)+1, maxCells)
		}
		return nil, fmt.Errorf("textmap: read: %w", err)
	}
	if len(rows) == 0 || width == 0 {
		return nil, ErrEmptyMap
	}

	g, err := grid.New(width, len(rows), opts...)
	if err != nil {
		return nil, err
	}

	var hasStart, hasGoal bool
	for y, line := range rows {
		for x, char := range line {
			switch char {
			case WallRune:
				err = g.SetClass(x, y, grid.Wall)
			case StartRune:
				if hasStart {
					start, _ := g.Start()
					return nil, fmt.Errorf("%w: start at %v and (%d,%d)", ErrDuplicateMarker, start, x, y)
				}
				hasStart = true
				err = g.SetStart(x, y)
			case GoalRune:
				if hasGoal {
					goal, _ := g.Goal()
					return nil, fmt.Errorf("%w: goal at %v and (%d,%d)", ErrDuplicateMarker, goal, x, y)
				}
				hasGoal = true
				err = g.SetGoal(x, y)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// exceeds reports whether w×h > limit without overflowing.
func exceeds(w, h, limit int) bool {
	return w > 0 && h > limit/w
}
