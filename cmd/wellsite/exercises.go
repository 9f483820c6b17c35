package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/katalvlaran/wellsite/dispense"
	"github.com/katalvlaran/wellsite/heapsort"
)

func dispenseCommand(log *logrus.Logger) cli.Command {
	return cli.Command{
		Name:         "dispense",
		Usage:        "split an amount into banknotes",
		ArgsUsage:    "DENOMINATIONS AMOUNT",
		Description:  "DENOMINATIONS is an ascending comma-separated list.\n   Example: wellsite dispense 20,50 310",
		OnUsageError: usageError(log),
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return usage(c, log, fmt.Errorf("want 2 arguments, got %d", c.NArg()))
			}
			dens, err := dispense.ParseDenominations(c.Args().Get(0))
			if err != nil {
				return usage(c, log, err)
			}
			amount, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return usage(c, log, fmt.Errorf("amount: %w", err))
			}
			order, err := dispense.Dispense(dens, amount)
			if err != nil {
				return usage(c, log, err)
			}

			w := c.App.Writer
			fmt.Fprintf(w, "Dispensing: %s\n", order)
			if order.Remainder > 0 {
				fmt.Fprintf(w, "Remainder: %d\n", order.Remainder)
			}
			return nil
		},
	}
}

func heapsortCommand(log *logrus.Logger) cli.Command {
	return cli.Command{
		Name:         "heapsort",
		Usage:        "heap sort integers and show the heap",
		ArgsUsage:    "VALUES",
		Description:  "VALUES is a comma-separated list.\n   Example: wellsite heapsort 3,7,1,4",
		OnUsageError: usageError(log),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return usage(c, log, fmt.Errorf("want 1 argument, got %d", c.NArg()))
			}
			values, err := heapsort.ParseValues(c.Args().Get(0))
			if err != nil {
				return usage(c, log, err)
			}

			w := c.App.Writer
			fmt.Fprintln(w, "Built heap:")
			fmt.Fprint(w, heapsort.Render(heapsort.Build(values)))
			fmt.Fprintln(w, "Sorted array:")
			sorted := heapsort.Sort(values)
			parts := make([]string, len(sorted))
			for i, v := range sorted {
				parts[i] = strconv.Itoa(v)
			}
			fmt.Fprintln(w, strings.Join(parts, " "))
			return nil
		},
	}
}
