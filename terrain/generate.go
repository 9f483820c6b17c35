// SPDX-License-Identifier: MIT
// Package: wellsite/terrain
//
// generate.go: random maps and the WIDTHxHEIGHT dimension syntax.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors panic on meaningless inputs; Generate never panics.
//   • Without WithSeed/WithRand the generator is ChaCha8 keyed from crypto/rand.

package terrain

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Option customizes Generate.
type Option func(*genConfig)

type genConfig struct {
	rng *rand.Rand
}

// WithSeed makes generation reproducible: equal seeds give equal maps.
func WithSeed(seed uint64) Option {
	return func(c *genConfig) {
		var key [32]byte
		binary.LittleEndian.PutUint64(key[:8], seed)
		c.rng = rand.New(rand.NewChaCha8(key))
	}
}

// WithRand supplies an explicit generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("terrain: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// secureRand returns a ChaCha8 generator keyed from the system CSPRNG.
func secureRand() (*rand.Rand, error) {
	var key [32]byte
	if _, err := crand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("terrain: seeding generator: %w", err)
	}
	return rand.New(rand.NewChaCha8(key)), nil
}

// Generate returns a width×height map with trees drawn first and houses
// second, each at a uniform (row, column). Overlapping draws overwrite
// earlier ones, so the map may hold fewer houses or trees than requested.
//
// Returns ErrBadDimensions or ErrBadCount for invalid arguments.
// Complexity: O(W×H + houses + trees).
func Generate(width, height, houses, trees int, opts ...Option) (*Grid, error) {
	if houses < 0 || trees < 0 {
		return nil, fmt.Errorf("%w: houses=%d trees=%d", ErrBadCount, houses, trees)
	}
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}

	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		if cfg.rng, err = secureRand(); err != nil {
			return nil, err
		}
	}

	scatter(g, cfg.rng, trees, Tree)
	scatter(g, cfg.rng, houses, House)

	return g, nil
}

// scatter places n cells of type t at uniform positions, row drawn first.
func scatter(g *Grid, r *rand.Rand, n int, t CellType) {
	for i := 0; i < n; i++ {
		y := r.IntN(g.Height)
		x := r.IntN(g.Width)
		g.Place(Point{X: x, Y: y}, t)
	}
}

// ParseDimensions parses "WIDTHxHEIGHT" (for example "40x25").
// Returns ErrBadFormat for malformed input and ErrBadDimensions when a
// side is below 1.
func ParseDimensions(s string) (width, height int, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	if width, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: width %q: %v", ErrBadFormat, parts[0], err)
	}
	if height, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: height %q: %v", ErrBadFormat, parts[1], err)
	}
	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}

	return width, height, nil
}
