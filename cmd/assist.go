package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mkeller/fitlog"
	"github.com/mkeller/fitlog/agent"
	"github.com/mkeller/fitlog/renderer"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI coach"
}
func (*assistCmd) Usage() string {
	return `fit assist [<first question>]

  Starts an interactive chat with a coach grounded in your own history: the
  weekly averages and maintenance estimate are handed to the model so
  answers refer to your actual figures.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	coach := agent.NewCoach(historyMarkdown())
	a := agent.New(os.Stdout, os.Stdin, coach)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Coach failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// historyMarkdown renders the user's figures for the coach's system
// instruction. A missing or thin history is not fatal, the coach just knows
// less.
func historyMarkdown() string {
	history, err := LoadHistory()
	if err != nil {
		log.Println("warning, no history for the coach:", err)
		return "(no history logged yet)"
	}
	entries, err := fitlog.DailyEntries(history)
	if err != nil {
		log.Println("warning, unreadable history for the coach:", err)
		return "(no history logged yet)"
	}

	var b strings.Builder
	b.WriteString(renderer.WeeklyMarkdown(fitlog.WeeklySummary(entries)))
	if estimate, err := fitlog.EstimateMaintenance(entries); err == nil {
		b.WriteString("\n")
		b.WriteString(renderer.MaintenanceMarkdown(estimate))
	}
	return b.String()
}
