package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/katalvlaran/wellsite/facility"
	"github.com/katalvlaran/wellsite/propagate"
	"github.com/katalvlaran/wellsite/render"
	"github.com/katalvlaran/wellsite/report"
	"github.com/katalvlaran/wellsite/terrain"
	"github.com/katalvlaran/wellsite/trail"
)

// placeArgs are the validated positional arguments of the place command.
type placeArgs struct {
	width, height int
	houses, trees int
}

func placeCommand(log *logrus.Logger) cli.Command {
	return cli.Command{
		Name:      "place",
		Usage:     "generate a map and place a well",
		ArgsUsage: "WIDTHxHEIGHT HOUSES TREES",
		Description: "Example: wellsite place 10x5 4 3\n" +
			"   Flags go before the positional arguments.",
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "distances, d", Usage: "print each cell's distance to the well"},
			cli.Uint64Flag{Name: "seed, s", Usage: "seed for a reproducible map (0 uses a secure random seed)"},
			cli.BoolFlag{Name: "report, r", Usage: "print a YAML summary after the map"},
			cli.BoolFlag{Name: "verbose, v", Usage: "log search progress"},
		},
		OnUsageError: usageError(log),
		Action: func(c *cli.Context) error {
			return runPlace(c, log)
		},
	}
}

func parsePlaceArgs(c *cli.Context) (placeArgs, error) {
	var a placeArgs
	if c.NArg() != 3 {
		return a, fmt.Errorf("want 3 arguments, got %d", c.NArg())
	}
	var err error
	if a.width, a.height, err = terrain.ParseDimensions(c.Args().Get(0)); err != nil {
		return a, err
	}
	if a.houses, err = strconv.Atoi(c.Args().Get(1)); err != nil {
		return a, fmt.Errorf("houses: %w", err)
	}
	if a.trees, err = strconv.Atoi(c.Args().Get(2)); err != nil {
		return a, fmt.Errorf("trees: %w", err)
	}
	if a.houses < 0 || a.trees < 0 {
		return a, fmt.Errorf("%w: houses=%d trees=%d", terrain.ErrBadCount, a.houses, a.trees)
	}
	return a, nil
}

func runPlace(c *cli.Context, log *logrus.Logger) error {
	if c.Bool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
	a, err := parsePlaceArgs(c)
	if err != nil {
		return usage(c, log, err)
	}

	runID := report.NewRunID()
	entry := log.WithFields(logrus.Fields{
		"run":    runID.String(),
		"width":  a.width,
		"height": a.height,
		"houses": a.houses,
		"trees":  a.trees,
	})

	var opts []terrain.Option
	if seed := c.Uint64("seed"); seed != 0 {
		opts = append(opts, terrain.WithSeed(seed))
		entry = entry.WithField("seed", seed)
	}
	g, err := terrain.Generate(a.width, a.height, a.houses, a.trees, opts...)
	if err != nil {
		return usage(c, log, err)
	}
	entry.Debug("map generated")

	lead := facility.NoPlacement()
	best, trails, err := facility.Site(g, facility.WithOnCandidate(func(p terrain.Point, total int) {
		if total < lead.Total {
			lead = facility.Placement{Well: p, Total: total}
			entry.WithFields(logrus.Fields{"x": p.X, "y": p.Y, "total": total}).Debug("better candidate")
		}
	}))
	switch {
	case errors.Is(err, facility.ErrNoPlacement), errors.Is(err, facility.ErrNoHouses):
		entry.WithError(err).Warn("no well placed")
		fmt.Fprintln(c.App.Writer, "Could not place a well. Too many trees?")
	case errors.Is(err, trail.ErrInconsistent), errors.Is(err, facility.ErrInvalidTotal):
		return fmt.Errorf("%w: %v", errFault, err)
	case err != nil:
		return err
	default:
		entry.WithFields(logrus.Fields{
			"well_x":    best.Well.X,
			"well_y":    best.Well.Y,
			"total":     best.Total,
			"reachable": propagate.Reachable(g),
		}).Info("well placed")
	}

	if err := render.Write(c.App.Writer, g, c.Bool("distances")); err != nil {
		return err
	}
	if !c.Bool("report") {
		return nil
	}
	out, err := report.New(runID, g, best, trails).YAML()
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(out)
	return err
}
