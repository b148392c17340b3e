package config

import (
	_ "embed"
	"time"

	"github.com/charmbracelet/log"
)

//go:embed defaults/chomp.yaml
var defaultChompYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Gameplay: GameplayConfig{
			TickInterval: 200 * time.Millisecond,
			DefaultMode:  "normal",
			Seed:         0,
		},
		Display: DisplayConfig{
			FPS: 60,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
		Journal: JournalConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: log.InfoLevel.String(),
		},
	}
}

// DefaultYAML returns the embedded default chomp.yaml.
func DefaultYAML() []byte {
	return defaultChompYAML
}
