// chomp is a maze-chase arcade game for the terminal.
//
// Usage:
//
//	chomp play [mode]        - Play normal (default) or simple mode
//	chomp menu               - Pick a mode interactively
//	chomp list               - List available modes
//	chomp sim                - Run a headless autopilot game
//	chomp runs               - Show journaled runs
//	chomp replay <run-id>    - Replay a journaled run and verify it
//	chomp config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config file
//	--seed <value>      - RNG seed for reproducible gameplay
//	--fps <rate>        - Frame rate (default from config: 60)
//	--log-level <lvl>   - debug, info, warn, error
//	--journal <path>    - Journal database path (default: ~/.chomp/journal.db)
//	--no-journal        - Do not record runs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomp/internal/config"
	_ "github.com/vovakirdan/tui-chomp/internal/games/chomp" // registers the modes
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagFPS       int
	flagLogLevel  string
	flagJournal   string
	flagNoJournal bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomp",
	Short: "Chomp - a maze-chase arcade game in your terminal",
	Long: `Chomp is a grid maze-chase game. Eat every dot while four adversaries
hunt you; bonus items turn the tables for ten seconds.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all modes
  sim      - Headless autopilot run
  runs     - Show journaled runs
  replay   - Replay and verify a journaled run
  config   - Print the effective configuration

Examples:
  chomp play
  chomp play simple --tick 150ms
  chomp sim --seed 42 --record
  chomp replay 3f2a9c1e`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or time based)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "Path to the run journal database")
	rootCmd.PersistentFlags().BoolVar(&flagNoJournal, "no-journal", false, "Do not record runs")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// settings loads the config file and applies the global flag overrides.
func settings() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagSeed != 0 {
		cfg.Gameplay.Seed = flagSeed
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagJournal != "" {
		cfg.Journal.Path = flagJournal
	}
	if flagNoJournal {
		cfg.Journal.Enabled = false
	}
	return cfg, cfg.Validate()
}

// newLogger builds the command logger writing to w.
func newLogger(cfg config.Config, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           cfg.LogLevel(),
		ReportTimestamp: true,
		Prefix:          "chomp",
	})
}

// fileLogger logs to ~/.chomp/chomp.log so the TUI keeps the terminal.
// The returned closer must be called on exit.
func fileLogger(cfg config.Config) (*log.Logger, func(), error) {
	path, err := config.DataPath("chomp.log")
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(cfg, f), func() { f.Close() }, nil
}

// openJournal opens the run journal when enabled. A nil store means
// journaling is off.
func openJournal(cfg config.Config) (*storage.Store, error) {
	if !cfg.Journal.Enabled {
		return nil, nil
	}
	path, err := cfg.JournalPath()
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}

// readJournal opens the journal for commands that need it even when
// recording is disabled.
func readJournal(cfg config.Config) (*storage.Store, error) {
	path, err := cfg.JournalPath()
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}
