package facility

import (
	"errors"

	"github.com/katalvlaran/wellsite/terrain"
)

// Sentinel errors for the placement search.
var (
	// ErrNoHouses indicates a grid with no House; it is rejected before search.
	ErrNoHouses = errors.New("facility: grid has no houses")
	// ErrNoPlacement indicates that no Empty cell reaches every House.
	ErrNoPlacement = errors.New("facility: no placement possible")
	// ErrInvalidTotal indicates a finite total distance that is not positive.
	ErrInvalidTotal = errors.New("facility: total distance is not positive")
)

// Placement is the winning candidate and its aggregate house distance.
// The zero value is not meaningful; use NoPlacement.
type Placement struct {
	Well  terrain.Point
	Total int
}

// NoPlacement returns the "no candidate found" result.
func NoPlacement() Placement {
	return Placement{Well: terrain.NoPoint, Total: terrain.Unreachable}
}

// Found reports whether p names a real cell.
func (p Placement) Found() bool {
	return p.Well != terrain.NoPoint && p.Total != terrain.Unreachable
}

// Option configures FindBestWell.
type Option func(*Options)

// Options holds search callbacks.
type Options struct {
	// OnCandidate is called after each candidate has been scored.
	// total is terrain.Unreachable for disqualified candidates.
	OnCandidate func(p terrain.Point, total int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnCandidate: func(terrain.Point, int) {},
	}
}

// WithOnCandidate registers a callback run once per scored candidate.
func WithOnCandidate(fn func(p terrain.Point, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}
