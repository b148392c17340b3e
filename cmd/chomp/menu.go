package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomp/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start chomp in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After you quit a game, you return to the menu to play again.
The menu also lists the most recent journaled runs.

Examples:
  chomp menu
  chomp menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}

	p := openPlayer(cfg)
	defer p.close()

	rc := runtimeConfig(cfg)

	// Menu loop
	for {
		var runs tui.RunLister
		if p.store != nil {
			runs = p.store
		}
		res, err := tui.RunMenu(runs, rc)
		if err != nil {
			return err
		}
		rc = res.Config
		if res.Quit {
			return nil
		}

		mode, err := resolveMode(res.GameID, cfg)
		if err != nil {
			return err
		}
		if err := p.play(mode, rc); err != nil {
			return err
		}
	}
}
