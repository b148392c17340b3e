package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chomp/internal/config"
	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/sim"
	"github.com/vovakirdan/tui-chomp/internal/journal"
	"github.com/vovakirdan/tui-chomp/internal/platform/audio"
	"github.com/vovakirdan/tui-chomp/internal/platform/tui"
	"github.com/vovakirdan/tui-chomp/internal/registry"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

var (
	flagTick time.Duration
	flagMute bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. Mode is normal (default) or simple, or a registry ID
from 'chomp list'.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Esc            - Pause
  R                - Restart (after game over or victory)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  chomp play
  chomp play simple
  chomp play --tick 120ms --mute
  chomp play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Engine tick interval (0 = from config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// resolveMode accepts a mode name or a registry ID.
func resolveMode(arg string, cfg config.Config) (sim.Mode, error) {
	if arg == "" {
		return cfg.Mode()
	}
	if m, err := sim.ParseMode(arg); err == nil {
		return m, nil
	}
	switch arg {
	case chomp.IDNormal:
		return sim.ModeNormal, nil
	case chomp.IDSimple:
		return sim.ModeSimple, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 'chomp list')", arg)
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickRate:     cfg.Display.FPS,
		TickInterval: cfg.Gameplay.TickInterval,
		Seed:         cfg.Gameplay.Seed,
	}
}

// player bundles what a terminal session needs and how to release it.
type player struct {
	logger *log.Logger
	store  *storage.Store
	audio  audio.CuePlayer
	close  func()
}

func openPlayer(cfg config.Config) *player {
	logger, closeLog, err := fileLogger(cfg)
	if err != nil {
		// Bubble Tea owns the terminal, so there is nowhere else to log.
		logger, closeLog = newLogger(cfg, io.Discard), func() {}
	}

	p := &player{logger: logger, audio: audio.Nop{}}

	store, err := openJournal(cfg)
	if err != nil {
		// Continue without the journal - the game still works
		logger.Warn("journal unavailable", "err", err)
	} else {
		p.store = store
	}

	if cfg.Audio.Enabled && !flagMute {
		sp, err := audio.Open(cfg.Audio)
		if err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
		p.audio = sp
	}

	p.close = func() {
		p.audio.Close()
		if p.store != nil {
			p.store.Close()
		}
		closeLog()
	}
	return p
}

// attach wires logging and journaling into every session of g.
func (p *player) attach(g *chomp.Game) {
	g.Subscribe(sim.LogListener(p.logger))
	if p.store == nil {
		return
	}
	g.OnSession(func(s *sim.Session) func(sim.State) {
		rec, err := journal.Attach(p.store, s, p.logger)
		if err != nil {
			p.logger.Warn("journal run not started", "err", err)
			return nil
		}
		return func(final sim.State) {
			if err := rec.Finish(final); err != nil {
				p.logger.Warn("journal run not finished", "run", rec.ID(), "err", err)
			}
		}
	})
}

// play runs one mode in the terminal until the user quits.
func (p *player) play(mode sim.Mode, rc core.RuntimeConfig) error {
	game, err := registry.Create(chomp.IDForMode(mode))
	if err != nil {
		return err
	}
	g, ok := game.(*chomp.Game)
	if !ok {
		return fmt.Errorf("mode %s is not a chomp game", mode)
	}
	p.attach(g)
	defer g.Close()

	err = tui.Run(g, rc, tui.Options{
		Audio:    p.audio,
		Logger:   p.logger,
		KeepSeed: flagSeed != 0,
	})
	if err == nil {
		err = g.Err()
	}
	return err
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	if flagTick > 0 {
		cfg.Gameplay.TickInterval = flagTick
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	mode, err := resolveMode(arg, cfg)
	if err != nil {
		return err
	}

	p := openPlayer(cfg)
	defer p.close()

	return p.play(mode, runtimeConfig(cfg))
}
