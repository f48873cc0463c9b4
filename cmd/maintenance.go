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

type maintenanceCmd struct{}

func (*maintenanceCmd) Name() string { return "maintenance" }
func (*maintenanceCmd) Synopsis() string {
	return "estimate maintenance calories from the logged history"
}
func (*maintenanceCmd) Usage() string {
	return `fit maintenance [-history <file>]

  Estimates maintenance calories from the history itself: the average net
  intake is corrected by the calorie gap that explains the observed weight
  change, at 3500 kcal per pound. Also shows targets for losing about half
  a pound and one pound per week.

  Needs at least two days with net calories and two recorded weights.
`
}

func (*maintenanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *maintenanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	history, err := LoadHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	entries, err := fitlog.DailyEntries(history)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	estimate, err := fitlog.EstimateMaintenance(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MaintenanceMarkdown(estimate))
	return subcommands.ExitSuccess
}
