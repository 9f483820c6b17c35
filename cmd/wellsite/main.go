// Command wellsite places a well on a random map of houses and trees so that
// the total walk from every house is as short as possible, then prints the
// map with one shortest trail per house.
//
// Usage:
//
//	wellsite place [--distances] [--seed N] [--report] [--verbose] WIDTHxHEIGHT HOUSES TREES
//	wellsite dispense DENOMINATIONS AMOUNT
//	wellsite heapsort VALUES
//
// Example:
//
//	wellsite place --seed 7 40x25 8 128
package main

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// errFault marks failures that must end the process with a non-zero code.
var errFault = errors.New("wellsite: internal fault")

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
// Usage mistakes print help and still exit 0; internal faults exit 1.
func run(args []string, stdout, stderr io.Writer) int {
	log := newLogger(stderr)
	app := newApp(stdout, stderr, log)
	if err := app.Run(args); err != nil {
		log.WithError(err).Error("run failed")
		return 1
	}
	return 0
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.Level = logrus.InfoLevel
	return log
}

func newApp(stdout, stderr io.Writer, log *logrus.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "wellsite"
	app.Usage = "find the best spot for a well among houses and trees"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Commands = []cli.Command{
		placeCommand(log),
		dispenseCommand(log),
		heapsortCommand(log),
	}
	return app
}

// usageError routes flag parsing failures to usage so they exit like any
// other argument mistake.
func usageError(log *logrus.Logger) cli.OnUsageErrorFunc {
	return func(c *cli.Context, err error, _ bool) error {
		return usage(c, log, err)
	}
}

// usage logs why the arguments were rejected and prints the command help.
func usage(c *cli.Context, log *logrus.Logger, err error) error {
	if err != nil {
		log.WithError(err).Warn("invalid arguments")
	}
	return cli.ShowCommandHelp(c, c.Command.Name)
}
