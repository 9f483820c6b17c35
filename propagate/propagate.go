package propagate

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/wellsite/terrain"
)

// walker encapsulates mutable propagation state.
type walker struct {
	grid  *terrain.Grid
	opts  Options
	queue *queue.Queue[terrain.Point]
}

// Propagate runs a breadth-first distance fill from src over g, writing
// shortest obstacle-aware distances into each reachable cell. An
// out-of-bounds src is a no-op. Distances must all be terrain.Unreachable
// beforehand (see terrain.Grid.ResetDistances).
func Propagate(g *terrain.Grid, src terrain.Point, opts ...Option) {
	if g == nil {
		return
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		queue: queue.New[terrain.Point](),
	}
	// The source is assigned regardless of its type.
	if c := g.At(src); c != nil && 0 < c.Distance {
		c.Distance = 0
		w.queue.Enqueue(src)
	}
	w.loop()
}

// loop drains the worklist, relaxing the neighbours of each cell.
func (w *walker) loop() {
	for !w.queue.Empty() {
		p := w.queue.Dequeue()
		d := w.grid.At(p).Distance
		w.opts.OnVisit(p, d)
		w.relax(p, d+1)
	}
}

// relax enqueues every walkable neighbour of p whose stored distance is
// strictly greater than next.
func (w *walker) relax(p terrain.Point, next int) {
	for _, off := range terrain.Offsets {
		c := w.grid.At(p.Add(off))
		if c == nil || !c.Type.Walkable() {
			continue
		}
		if next < c.Distance {
			c.Distance = next
			w.queue.Enqueue(p.Add(off))
		}
	}
}

// Reachable returns the number of cells holding a finite distance.
func Reachable(g *terrain.Grid) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(terrain.Point{X: x, Y: y}).Distance != terrain.Unreachable {
				n++
			}
		}
	}
	return n
}
