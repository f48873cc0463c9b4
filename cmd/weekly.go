package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeller/fitlog"
	"github.com/mkeller/fitlog/renderer"
)

type weeklyCmd struct {
	write bool
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display weekly averages of the weight history" }
func (*weeklyCmd) Usage() string {
	return `fit weekly [-w] [-history <file>] [-weekly <file>]

  Buckets the daily history by calendar week (Monday start) and displays the
  weekly averages of weight, calories in, calories out and net intake.

  With -w the weekly averages file is updated too: new weeks are appended
  and weeks whose averages changed since the last run are refreshed.
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "also update the weekly averages file")
}

func (c *weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	weekly := fitlog.WeeklySummary(entries)

	printMarkdown(renderer.WeeklyMarkdown(weekly))

	if !c.write {
		return subcommands.ExitSuccess
	}

	previous, err := fitlog.LoadTable(*weeklyFile)
	if errors.Is(err, fitlog.ErrFileAccess) {
		log.Println("warning, weekly file does not exist, starting an empty one instead")
		previous, err = fitlog.NewTable(weekly.Columns()...), nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	merged, added, updated, err := fitlog.MergeWeekly(previous, weekly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := fitlog.SaveTable(*weeklyFile, merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %s: %d weeks added, %d refreshed\n", *weeklyFile, added, updated)
	return subcommands.ExitSuccess
}
