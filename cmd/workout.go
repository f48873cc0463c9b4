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

type workoutCmd struct {
	formula     string
	minSessions int
	exercise    string
}

func (*workoutCmd) Name() string     { return "workout" }
func (*workoutCmd) Synopsis() string { return "estimated 1RM reports from a strength log export" }
func (*workoutCmd) Usage() string {
	return `fit workout [-formula <name>] [-min-sessions <n>] [-exercise <name>] <export.tsv>

  Reads a tab-separated strength log export, keeps the best set of each day
  per exercise and reports the all-time estimated 1RM of every exercise with
  how many days ago it was set.

  With -exercise, prints the session-by-session 1RM history of one lift
  instead, PR days marked.
`
}

func (c *workoutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.formula, "formula", "epley", "1RM estimation formula (epley, brzycki)")
	f.IntVar(&c.minSessions, "min-sessions", 2, "Hide exercises with fewer logged days than this")
	f.StringVar(&c.exercise, "exercise", "", "Show the full history of this exercise instead")
}

func (c *workoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one export file")
		return subcommands.ExitUsageError
	}

	formula, err := fitlog.ParseFormula(c.formula)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open export %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	sets, err := fitlog.ReadWorkoutLog(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	daily := fitlog.BestPerDay(sets, formula)

	if c.exercise != "" {
		points := fitlog.ExerciseHistory(daily, c.exercise)
		if len(points) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no sets logged for %q\n", c.exercise)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.ExerciseHistoryMarkdown(c.exercise, points))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.PRGapsMarkdown(fitlog.PRGaps(daily, c.minSessions), formula))
	return subcommands.ExitSuccess
}
