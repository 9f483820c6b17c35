package propagate

import "github.com/katalvlaran/wellsite/terrain"

// Option configures a propagation run via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe a propagation run.
type Options struct {
	// OnVisit is called once per dequeued cell with its final distance.
	OnVisit func(p terrain.Point, distance int)
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(terrain.Point, int) {},
	}
}

// WithOnVisit registers a callback run when a cell is taken off the worklist.
func WithOnVisit(fn func(p terrain.Point, distance int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
