// Package agent implements the interactive coach behind `fit assist`: a
// Gemini-backed chat seeded with the user's own history, so answers are about
// their numbers rather than generic advice.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI coach that handles the chat session.
type Agent struct {
	w     io.Writer
	r     *bufio.Reader
	Coach *Coach
}

// New creates a new Agent.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), an
// io.Reader for user input (e.g., os.Stdin), and the coach to converse with.
func New(w io.Writer, r io.Reader, coach *Coach) *Agent {
	return &Agent{
		w:     w,
		r:     bufio.NewReader(r),
		Coach: coach,
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. Initial prompts, if
// any, are consumed before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Coach.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to fit coaching assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Coach.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
