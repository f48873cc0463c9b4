package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeller/fitlog"
	"github.com/mkeller/fitlog/date"
)

type logCmd struct {
	date     string
	food     string
	exercise string
	weight   string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "append one day of figures to the weight history" }
func (*logCmd) Usage() string {
	return `fit log [-d <date>] [-food <kcal>] [-exercise <kcal>] [-weight <lbs>]

  Appends a single day to the weight history. The history stays append-only:
  a date that is already logged is left untouched.

Usage Examples:
# Log today's numbers.
$ fit log -food 1850 -exercise 400 -weight 181.2

# Backfill a missed day.
$ fit log -d 2025-12-14 -weight 181.8
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today)")
	f.StringVar(&c.food, "food", "", "Calories eaten")
	f.StringVar(&c.exercise, "exercise", "", "Calories burned")
	f.StringVar(&c.weight, "weight", "", "Weight in pounds")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := date.Today()
	if c.date != "" {
		var err error
		day, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.food == "" && c.exercise == "" && c.weight == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to log, pass at least one of -food, -exercise, -weight")
		return subcommands.ExitUsageError
	}

	history, err := LoadHistoryOrNew()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	entry := fitlog.NewTable(fitlog.ColDate, fitlog.ColFood, fitlog.ColExercise, fitlog.ColWeight)
	if err := entry.Append(fitlog.Row{day.String(), c.food, c.exercise, c.weight}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	merged, added, err := fitlog.Merge(history, entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if added == 0 {
		fmt.Printf("%s is already logged, history unchanged\n", day)
		return subcommands.ExitSuccess
	}

	if err := SaveHistory(merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Logged %s to %s\n", day, *historyFile)
	return subcommands.ExitSuccess
}
