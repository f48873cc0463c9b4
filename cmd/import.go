package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeller/fitlog"
)

type importCmd struct{}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "merge a calorie export into the weight history, skipping dates already present"
}
func (*importCmd) Usage() string {
	return `fit import [-history <file>] [<export.csv>]

  Merges the rows of a calorie-tracker CSV export into the weight history
  file, keyed by date. Rows whose date already appears in the history are
  skipped, so importing the same export twice is a no-op. Existing history
  rows are never modified or reordered.

  Without an argument the bundled sample export is imported.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	source := defaultSource
	if f.NArg() > 0 {
		source = f.Arg(0)
	}

	added, err := fitlog.Run(source, *historyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %d new entries to %s\n", added, *historyFile)
	return subcommands.ExitSuccess
}
