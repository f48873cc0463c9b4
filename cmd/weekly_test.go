package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/mkeller/fitlog"
)

// runWeekly executes the weekly command against the given history and
// weekly file paths.
func runWeekly(t *testing.T, historyPath, weeklyPath string) subcommands.ExitStatus {
	t.Helper()
	old := *weeklyFile
	*weeklyFile = weeklyPath
	t.Cleanup(func() { *weeklyFile = old })
	return run(t, historyPath, &weeklyCmd{}, "-w")
}

func TestWeeklyCmdKeepsStoredWeeks(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.csv")
	weeklyPath := filepath.Join(dir, "weekly.csv")

	history := "date,food,exercise,weight\n2025-12-15,1850,400,181.2\n2025-12-16,2100,500,181.0\n"
	stored := "week_start,avg_weight,avg_food,avg_exercise,avg_net\n2025-01-06,190.0,2000,400,1600\n"
	if err := os.WriteFile(historyPath, []byte(history), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(weeklyPath, []byte(stored), 0644); err != nil {
		t.Fatal(err)
	}

	if got := runWeekly(t, historyPath, weeklyPath); got != subcommands.ExitSuccess {
		t.Fatalf("weekly -w returned %v, want success", got)
	}

	merged, err := fitlog.LoadTable(weeklyPath)
	if err != nil {
		t.Fatal(err)
	}
	if merged.Len() != 2 {
		t.Fatalf("weekly file has %d rows, want the stored week plus the new one", merged.Len())
	}
	if got := merged.Get(merged.Row(0), "week_start"); got != "2025-01-06" {
		t.Errorf("first week = %q, want the stored 2025-01-06", got)
	}
}

func TestWeeklyCmdRefusesToOverwriteMalformedFile(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.csv")
	weeklyPath := filepath.Join(dir, "weekly.csv")

	history := "date,food,exercise,weight\n2025-12-15,1850,400,181.2\n"
	// A stored week followed by a ragged row.
	malformed := "week_start,avg_weight,avg_food,avg_exercise,avg_net\n2025-01-06,190.0,2000,400,1600\n2025-01-13,189.0\n"
	if err := os.WriteFile(historyPath, []byte(history), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(weeklyPath, []byte(malformed), 0644); err != nil {
		t.Fatal(err)
	}

	if got := runWeekly(t, historyPath, weeklyPath); got != subcommands.ExitFailure {
		t.Fatalf("weekly -w on a malformed weekly file returned %v, want failure", got)
	}

	// The malformed file must be left for the user to repair, not replaced.
	after, err := os.ReadFile(weeklyPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != malformed {
		t.Errorf("weekly file was rewritten:\n%s", after)
	}
	if !strings.Contains(string(after), "2025-01-06") {
		t.Errorf("stored week is gone from:\n%s", after)
	}
}
