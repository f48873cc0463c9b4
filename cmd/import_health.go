package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeller/fitlog"
)

type importHealthCmd struct {
	entries string
	date    string
	weight  string
}

func (*importHealthCmd) Name() string { return "import-health" }
func (*importHealthCmd) Synopsis() string {
	return "merge weights from a JSON health export into the weight history"
}
func (*importHealthCmd) Usage() string {
	return `fit import-health [-entries <path>] [-date <path>] [-weight <path>] <export.json>

  Extracts date and weight pairs from a JSON health app export and merges
  them into the weight history like a CSV import. The shape of those exports
  varies per app, so each piece is selected with a jsonpath expression.

Usage Examples:
# An export shaped {"data": [{"date": "...", "weightLbs": ...}, ...]}
$ fit import-health -entries '$.data' -weight '$.weightLbs' export.json
`
}

func (c *importHealthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entries, "entries", "$.data", "jsonpath to the array of entries")
	f.StringVar(&c.date, "date", "$.date", "jsonpath to the date inside one entry")
	f.StringVar(&c.weight, "weight", "$.weight", "jsonpath to the weight inside one entry")
}

func (c *importHealthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one export file")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open export %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	source, err := fitlog.ReadHealthExport(file, fitlog.HealthPaths{
		Entries: c.entries,
		Date:    c.date,
		Weight:  c.weight,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	history, err := LoadHistoryOrNew()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	merged, added, err := fitlog.Merge(history, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveHistory(merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %d new entries to %s\n", added, *historyFile)
	return subcommands.ExitSuccess
}
