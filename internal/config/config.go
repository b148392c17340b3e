// Package config loads the YAML configuration for chomp: gameplay pacing,
// display rate, audio, the replay journal and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chomp/internal/games/chomp/sim"
)

// Config is the root of chomp.yaml.
type Config struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Display  DisplayConfig  `yaml:"display"`
	Audio    AudioConfig    `yaml:"audio"`
	Journal  JournalConfig  `yaml:"journal"`
	Log      LogConfig      `yaml:"log"`
}

// GameplayConfig controls the simulation.
type GameplayConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	DefaultMode  string        `yaml:"default_mode"`
	Seed         int64         `yaml:"seed"` // 0 = time based
}

// DisplayConfig controls the terminal front-end.
type DisplayConfig struct {
	FPS int `yaml:"fps"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// JournalConfig controls the replay journal.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks value ranges. It returns every problem found, joined.
func (c Config) Validate() error {
	var errs []error

	if c.Gameplay.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.tick_interval must be positive, got %v", c.Gameplay.TickInterval))
	}
	if _, err := sim.ParseMode(c.Gameplay.DefaultMode); err != nil {
		errs = append(errs, fmt.Errorf("gameplay.default_mode: %w", err))
	}
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display.fps must be positive, got %d", c.Display.FPS))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0,1], got %g", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Mode returns the parsed default mode.
func (c Config) Mode() (sim.Mode, error) {
	return sim.ParseMode(c.Gameplay.DefaultMode)
}

// LogLevel returns the parsed log level, info when unset or invalid.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// JournalPath resolves the journal location. An empty path means
// ~/.chomp/journal.db and a leading "~/" expands to the home directory.
func (c Config) JournalPath() (string, error) {
	p := c.Journal.Path
	if p == "" {
		return DataPath("journal.db")
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config: resolve journal path: %w", err)
		}
		return filepath.Join(home, rest), nil
	}
	return p, nil
}

// DataPath returns name inside the ~/.chomp data directory.
func DataPath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}
	return filepath.Join(home, ".chomp", name), nil
}
