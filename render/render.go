// Package render formats a terrain.Grid as text: one line per row, one glyph
// per cell, optionally followed by the cell's distance as "(07)", or "(XX)"
// when unreachable. Rendering never mutates the grid.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/wellsite/terrain"
)

// UnreachableMark replaces the distance of cells the source cannot reach.
const UnreachableMark = "(XX)"

// Render returns the text form of g, each row terminated by a newline.
func Render(g *terrain.Grid, showDistances bool) string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width*cellWidth(showDistances) + 1))
	writeRows(&sb, g, showDistances)
	return sb.String()
}

// Write streams the text form of g to w.
func Write(w io.Writer, g *terrain.Grid, showDistances bool) error {
	bw := bufio.NewWriter(w)
	writeRows(bw, g, showDistances)
	return bw.Flush()
}

// rowWriter is satisfied by strings.Builder and bufio.Writer. Both keep
// any write error for the caller to observe (bufio via Flush).
type rowWriter interface {
	WriteRune(r rune) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
}

func writeRows(w rowWriter, g *terrain.Grid, showDistances bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.At(terrain.Point{X: x, Y: y})
			w.WriteRune(c.Type.Glyph())
			if showDistances {
				w.WriteString(distance(c.Distance))
			}
		}
		w.WriteByte('\n')
	}
}

func distance(d int) string {
	if d == terrain.Unreachable {
		return UnreachableMark
	}
	return fmt.Sprintf("(%02d)", d)
}

func cellWidth(showDistances bool) int {
	if showDistances {
		return 1 + len(UnreachableMark)
	}
	return 1
}
