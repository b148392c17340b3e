package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomp/internal/journal"
)

var flagReplayBoard bool

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Replay a journaled run and verify it",
	Long: `Rebuild a journaled run from its seed and recorded inputs without a
terminal UI, then compare the final state digest with the stored one.
A unique prefix of the run ID is enough.

Examples:
  chomp replay 3f2a9c1e
  chomp replay 3f2a --board`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayBoard, "board", false, "Print the final board")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	store, err := readJournal(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := journal.Replay(store, args[0])
	out := cmd.OutOrStdout()
	if res.Run.ID != "" {
		if flagReplayBoard {
			board := res.Final.Board()
			fmt.Fprintln(out, board.String())
		}
		fmt.Fprintf(out, "run:      %s\n", res.Run.ID)
		fmt.Fprintf(out, "mode:     %s  seed %d  tick %v\n", res.Run.Mode, res.Run.Seed, res.Run.TickInterval)
		fmt.Fprintf(out, "inputs:   %d\n", res.Inputs)
		fmt.Fprintf(out, "outcome:  %s (stored %s)\n", res.Outcome(), res.Run.Outcome)
		fmt.Fprintf(out, "score:    %d\n", res.Final.Score)
		fmt.Fprintf(out, "ticks:    %d (%v)\n", res.Final.Ticks, res.Duration())
		fmt.Fprintf(out, "digest:   %s\n", res.Digest)
	}
	if err != nil {
		return err
	}

	if res.Verified() {
		fmt.Fprintln(out, "verified: replay matches the journal")
	} else {
		fmt.Fprintln(out, "verified: no (run was never finished)")
	}
	return nil
}
