package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mkeller/fitlog/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion. Complete exits by itself when invoked by the shell.
	csv := predict.Files("*.csv")
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"history": csv,
			"weekly":  csv,
		},
		Sub: map[string]*complete.Command{
			"import":        {Args: csv},
			"import-health": {Args: predict.Files("*.json")},
			"log":           {},
			"weekly":        {},
			"maintenance":   {},
			"loseit":        {Args: csv},
			"workout":       {Args: predict.Files("*")},
			"percent":       {},
			"assist":        {},
			"topic":         {},
		},
	}
	completion.Complete("fit")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
