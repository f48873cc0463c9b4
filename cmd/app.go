// Package cmd implements the CLI application to manage fitness history files.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mkeller/fitlog"
)

// Commands lists every subcommand of the application.
// A main package registers them all on a Commander and Execute()s the
// user-selected one.
var Commands = []subcommands.Command{
	&importCmd{},
	&importHealthCmd{},
	&logCmd{},
	&weeklyCmd{},
	&maintenanceCmd{},
	&loseitCmd{},
	&workoutCmd{},
	&percentCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var historyFile = flag.String("history", "weight_history.csv", "Path to the daily weight history file (CSV)")
var weeklyFile = flag.String("weekly", "weekly_averages.csv", "Path to the weekly averages file (CSV)")

// defaultSource is the bundled calorie export demonstrating the import flow.
const defaultSource = "sample_calories.csv"

// LoadHistory loads the daily history file named by the -history flag.
func LoadHistory() (*fitlog.Table, error) {
	return fitlog.LoadTable(*historyFile)
}

// LoadHistoryOrNew loads the daily history file, creating an empty one in
// memory when the file does not exist yet.
func LoadHistoryOrNew() (*fitlog.Table, error) {
	t, err := fitlog.LoadTable(*historyFile)
	if errors.Is(err, fitlog.ErrFileAccess) {
		log.Println("warning, history does not exist, starting an empty one instead")
		return fitlog.NewTable(fitlog.ColDate, fitlog.ColFood, fitlog.ColExercise, fitlog.ColWeight), nil
	}
	return t, err
}

// SaveHistory writes the daily history back to the -history flag path.
func SaveHistory(t *fitlog.Table) error {
	return fitlog.SaveTable(*historyFile, t)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(s string) {
	out, err := glamour.Render(s, "auto")
	if err != nil {
		fmt.Print(s)
		return
	}
	fmt.Print(out)
}
