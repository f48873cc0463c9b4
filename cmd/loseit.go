package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeller/fitlog"
	"github.com/mkeller/fitlog/renderer"
)

type loseitCmd struct {
	start float64
	end   float64
}

func (*loseitCmd) Name() string     { return "loseit" }
func (*loseitCmd) Synopsis() string { return "analyze a LoseIt weekly summary export" }
func (*loseitCmd) Usage() string {
	return `fit loseit -start <lbs> -end <lbs> <WeeklySummary.csv>

  Reads the Daily Summary section out of a LoseIt weekly export and, given
  the weights at the start and end of the week, estimates maintenance
  calories for that week.
`
}

func (c *loseitCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.start, "start", 0, "Weight at the start of the week, in pounds")
	f.Float64Var(&c.end, "end", 0, "Weight at the end of the week, in pounds")
}

func (c *loseitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one export file")
		return subcommands.ExitUsageError
	}
	if c.start == 0 || c.end == 0 {
		fmt.Fprintln(os.Stderr, "Error: -start and -end weights are required")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open export %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	days, err := fitlog.ReadDailySummary(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	estimate, err := fitlog.LoseitEstimate(days, c.start, c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MaintenanceMarkdown(estimate))
	return subcommands.ExitSuccess
}
