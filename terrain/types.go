// Package terrain defines cell types, coordinates and the Grid model.
package terrain

import "math"

// Unreachable is the distance sentinel for cells the current propagation
// source has not reached. It is larger than any finite distance.
const Unreachable = math.MaxInt

// CellType is the single role a cell holds at any time.
type CellType uint8

const (
	// Empty is open ground; the only type a well may be placed on.
	Empty CellType = iota
	// Tree blocks movement and is never reclassified once placed.
	Tree
	// House is a walking origin; houses can be walked through.
	House
	// Well is the chosen facility.
	Well
	// Path marks an Empty cell walked by a reconstructed trail.
	Path
)

// Glyphs used by Parse and by the renderer.
const (
	GlyphEmpty = '.'
	GlyphTree  = 't'
	GlyphHouse = 'H'
	GlyphWell  = 'O'
	GlyphPath  = '#'
)

// Glyph returns the map character for t.
func (t CellType) Glyph() rune {
	switch t {
	case Tree:
		return GlyphTree
	case House:
		return GlyphHouse
	case Well:
		return GlyphWell
	case Path:
		return GlyphPath
	default:
		return GlyphEmpty
	}
}

// String implements fmt.Stringer.
func (t CellType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Tree:
		return "tree"
	case House:
		return "house"
	case Well:
		return "well"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Walkable reports whether propagation may step into a cell of type t.
func (t CellType) Walkable() bool {
	return t != Tree
}

// Cell is one map position.
type Cell struct {
	Type     CellType
	Distance int // Unreachable, or steps from the current propagation source
}

// Point addresses a cell by column X and row Y.
type Point struct {
	X, Y int
}

// NoPoint is the "no cell" sentinel, used before a well is found.
var NoPoint = Point{X: -1, Y: -1}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Offsets lists the 4-directional neighbour offsets in walk priority
// order: up, down, right, left. Path reconstruction depends on this order.
var Offsets = [4]Point{
	{X: 0, Y: -1}, // up
	{X: 0, Y: 1},  // down
	{X: 1, Y: 0},  // right
	{X: -1, Y: 0}, // left
}

// Grid is a fixed-size map of Width×Height cells stored row-major.
// It owns its cells exclusively and is never resized.
type Grid struct {
	Width, Height int
	cells         []Cell
}
