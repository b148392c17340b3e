package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

// synth builds a fresh streamer for one cue.
type synth func(rate beep.SampleRate) beep.Streamer

var cueSynths = map[core.Cue]synth{
	// short falling "doink"
	core.CueDotEaten: func(rate beep.SampleRate) beep.Streamer {
		return newSweep(rate, 100*time.Millisecond, 600, 300, 0.3, 0.01)
	},
	core.CueBonus: func(rate beep.SampleRate) beep.Streamer {
		return beep.Seq(
			tone(rate, 70*time.Millisecond, 660, 0.3),
			tone(rate, 110*time.Millisecond, 990, 0.3),
		)
	},
	core.CueCapture: func(rate beep.SampleRate) beep.Streamer {
		return newSweep(rate, 180*time.Millisecond, 300, 1200, 0.35, 0.02)
	},
	core.CueGateOpens: func(rate beep.SampleRate) beep.Streamer {
		return beep.Seq(
			tone(rate, 80*time.Millisecond, 392, 0.25),
			tone(rate, 80*time.Millisecond, 523.25, 0.25),
			tone(rate, 140*time.Millisecond, 659.25, 0.25),
		)
	},
	core.CueGameOver: func(rate beep.SampleRate) beep.Streamer {
		return newSweep(rate, 700*time.Millisecond, 440, 90, 0.35, 0.01)
	},
	core.CueVictory: func(rate beep.SampleRate) beep.Streamer {
		return beep.Seq(
			tone(rate, 90*time.Millisecond, 523.25, 0.3),
			tone(rate, 90*time.Millisecond, 659.25, 0.3),
			tone(rate, 90*time.Millisecond, 783.99, 0.3),
			tone(rate, 260*time.Millisecond, 1046.5, 0.3),
		)
	},
}

// Streamer returns the sound for c at the given rate, or nil for cues that
// have no sound.
func Streamer(c core.Cue, rate beep.SampleRate) beep.Streamer {
	s, ok := cueSynths[c]
	if !ok {
		return nil
	}
	return s(rate)
}
