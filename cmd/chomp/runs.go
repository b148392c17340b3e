package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show journaled runs",
	Long: `List the most recent runs in the journal, newest first.

Examples:
  chomp runs
  chomp runs --limit 50`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	store, err := readJournal(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'chomp play' or 'chomp sim --record' to record one.")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-8s  %-6s  %-10s  %7s  %-20s  %s\n", "Run", "Mode", "Outcome", "Ticks", "Seed", "Started")
	fmt.Fprintf(out, "  %-8s  %-6s  %-10s  %7s  %-20s  %s\n", "---", "----", "-------", "-----", "----", "-------")

	for _, r := range runs {
		outcome := r.Outcome
		if !r.Finished() {
			outcome = "unfinished"
		}
		fmt.Fprintf(out, "  %-8s  %-6s  %-10s  %7d  %-20d  %s\n",
			r.ID[:min(8, len(r.ID))], r.Mode, outcome, r.Ticks, r.Seed,
			r.StartedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
