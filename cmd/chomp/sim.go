package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomp/internal/games/chomp/sim"
	"github.com/vovakirdan/tui-chomp/internal/journal"
)

var (
	flagSimMode   string
	flagSimTicks  uint64
	flagSimRecord bool
	flagSimBoard  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Play one game without a terminal UI. The autopilot steers toward the
nearest item and avoids adversaries where it can. With --record the run
is journaled and can be verified later with 'chomp replay'.

Examples:
  chomp sim
  chomp sim --mode simple --board
  chomp sim --seed 42 --ticks 2000 --record
  chomp sim --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimMode, "mode", "", "Mode: normal or simple (default from config)")
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 10000, "Stop after this many ticks")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Journal the run")
	simCmd.Flags().BoolVar(&flagSimBoard, "board", false, "Print the final board")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	mode, err := resolveMode(flagSimMode, cfg)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)

	seed := cfg.Gameplay.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := sim.NewSession(sim.Config{
		Mode:         mode,
		Seed:         seed,
		TickInterval: cfg.Gameplay.TickInterval,
	})
	if err != nil {
		return err
	}
	session.Subscribe(sim.LogListener(logger))

	var rec *journal.Recorder
	if flagSimRecord {
		store, err := readJournal(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		if rec, err = journal.Attach(store, session, logger); err != nil {
			return err
		}
	}

	final := sim.AutoPlay(session, flagSimTicks)
	if rec != nil {
		if err := rec.Finish(final); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if flagSimBoard {
		board := final.Board()
		fmt.Fprintln(out, board.String())
	}
	fmt.Fprintf(out, "mode:     %s\n", final.Mode)
	fmt.Fprintf(out, "seed:     %d\n", final.Seed)
	fmt.Fprintf(out, "outcome:  %s\n", journal.OutcomeFor(final.Status))
	fmt.Fprintf(out, "score:    %d\n", final.Score)
	fmt.Fprintf(out, "ticks:    %d (%v)\n", final.Ticks, final.Clock)
	fmt.Fprintf(out, "items:    %d left\n", final.Items.Remaining())
	fmt.Fprintf(out, "digest:   %s\n", final.Digest())
	if rec != nil {
		fmt.Fprintf(out, "run:      %s\n", rec.ID())
	}
	return nil
}
