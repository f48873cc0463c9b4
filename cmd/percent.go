package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/mkeller/fitlog/renderer"
)

type percentCmd struct {
	percents string
}

func (*percentCmd) Name() string     { return "percent" }
func (*percentCmd) Synopsis() string { return "print training percentages of a 1RM" }
func (*percentCmd) Usage() string {
	return `fit percent [-p <list>] <max>

  Prints common training percentages of a one-rep max, for loading the bar.

Usage Examples:
$ fit percent 225
$ fit percent -p 50,65,85 315
`
}

func (c *percentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.percents, "p", "60,70,80,90,95", "Comma-separated percentages to print")
}

func (c *percentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one max weight")
		return subcommands.ExitUsageError
	}
	max, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil || max <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid max weight %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	var percents []int
	for _, p := range strings.Split(c.percents, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid percentage %q\n", p)
			return subcommands.ExitUsageError
		}
		percents = append(percents, n)
	}

	printMarkdown(renderer.PercentMarkdown(max, percents))
	return subcommands.ExitSuccess
}
