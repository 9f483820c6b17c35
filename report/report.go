// Package report condenses one placement run into a YAML summary: the map
// size, what it holds, where the well went and how long each trail is.
package report

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wellsite/facility"
	"github.com/katalvlaran/wellsite/terrain"
	"github.com/katalvlaran/wellsite/trail"
)

// Coord is a cell position in the summary.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TrailSummary is one house and the number of steps to the well.
type TrailSummary struct {
	House Coord `yaml:"house"`
	Steps int   `yaml:"steps"`
}

// Summary describes a single placement run.
type Summary struct {
	Run       string         `yaml:"run"`
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	Houses    int            `yaml:"houses"`
	Trees     int            `yaml:"trees"`
	Placed    bool           `yaml:"placed"`
	Well      *Coord         `yaml:"well,omitempty"`
	Total     int            `yaml:"total,omitempty"`
	PathCells int            `yaml:"path_cells"`
	Trails    []TrailSummary `yaml:"trails,omitempty"`
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() uuid.UUID {
	return uuid.New()
}

// New builds the summary of a run. trails may be nil when no well was placed.
func New(run uuid.UUID, g *terrain.Grid, p facility.Placement, trails []trail.Trail) Summary {
	s := Summary{
		Run:    run.String(),
		Width:  g.Width,
		Height: g.Height,
		Houses: g.Count(terrain.House),
		Trees:  g.Count(terrain.Tree),
		Placed: p.Found(),
	}
	if !s.Placed {
		return s
	}
	s.Well = &Coord{X: p.Well.X, Y: p.Well.Y}
	s.Total = p.Total
	s.PathCells = trail.PathCells(trails).Size()
	for _, t := range trails {
		s.Trails = append(s.Trails, TrailSummary{
			House: Coord{X: t.House.X, Y: t.House.Y},
			Steps: t.Len(),
		})
	}

	return s
}

// YAML encodes s.
func (s Summary) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("report: encoding summary: %w", err)
	}
	return out, nil
}
