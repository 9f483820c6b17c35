package terrain

import "errors"

var (
	// ErrBadDimensions indicates a width or height below 1.
	ErrBadDimensions = errors.New("terrain: width and height must be at least 1")
	// ErrBadCount indicates a negative house or tree count.
	ErrBadCount = errors.New("terrain: house and tree counts must not be negative")
	// ErrBadFormat indicates a dimension string not of the form WIDTHxHEIGHT.
	ErrBadFormat = errors.New("terrain: dimensions must look like WIDTHxHEIGHT")
	// ErrNonRectangular indicates parsed rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrUnknownGlyph indicates a parsed rune that is not a cell glyph.
	ErrUnknownGlyph = errors.New("terrain: unknown cell glyph")
)
