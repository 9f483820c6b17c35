package terrain

import (
	"fmt"
	"strings"
)

// New returns a Width×Height grid of Empty cells, all at Unreachable.
// Returns ErrBadDimensions if either side is below 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Type: Empty, Distance: Unreachable}
	}

	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// Parse builds a grid from its text form, one line per row, one glyph per
// cell (see the Glyph* constants). Surrounding blank lines and per-line
// indentation are ignored. All distances start at Unreachable.
func Parse(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadDimensions)
	}
	width := len([]rune(rows[0]))
	g, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(runes), width)
		}
		for x, r := range runes {
			t, ok := typeOf(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, r, x, y)
			}
			g.cells[g.Index(x, y)].Type = t
		}
	}

	return g, nil
}

func typeOf(r rune) (CellType, bool) {
	switch r {
	case GlyphEmpty:
		return Empty, true
	case GlyphTree:
		return Tree, true
	case GlyphHouse:
		return House, true
	case GlyphWell:
		return Well, true
	case GlyphPath:
		return Path, true
	default:
		return Empty, false
	}
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to its row-major index y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// At returns the cell at p, or nil when p is out of bounds.
func (g *Grid) At(p Point) *Cell {
	if !g.InBounds(p.X, p.Y) {
		return nil
	}
	return &g.cells[g.Index(p.X, p.Y)]
}

// Place sets the type of the cell at p, overwriting whatever was there.
// Out-of-bounds points are ignored.
func (g *Grid) Place(p Point, t CellType) {
	if c := g.At(p); c != nil {
		c.Type = t
	}
}

// ResetDistances puts every cell back at Unreachable. Propagation
// requires this before each run.
func (g *Grid) ResetDistances() {
	for i := range g.cells {
		g.cells[i].Distance = Unreachable
	}
}

// Count returns the number of cells of type t.
func (g *Grid) Count(t CellType) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Type == t {
			n++
		}
	}
	return n
}

// Points returns the coordinates of every cell of type t in row-major order.
func (g *Grid) Points(t CellType) []Point {
	var pts []Point
	for i := range g.cells {
		if g.cells[i].Type == t {
			pts = append(pts, g.Coordinate(i))
		}
	}
	return pts
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}
