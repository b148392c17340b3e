// Package audio turns gameplay cues into short synthesized sounds played
// through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-chomp/internal/config"
	"github.com/vovakirdan/tui-chomp/internal/core"
)

// CuePlayer plays cues without blocking the caller.
type CuePlayer interface {
	Play(cues ...core.Cue)
	Close()
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(...core.Cue) {}
func (Nop) Close()           {}

// Speaker mixes cue sounds into the system audio device.
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// Open initializes the speaker for cfg. A disabled config returns Nop.
// Callers should treat an error as "play silently".
func Open(cfg config.AudioConfig) (CuePlayer, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return Nop{}, fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	s := &Speaker{rate: rate, volume: cfg.Volume, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the sound of each cue. Unknown cues are ignored.
func (s *Speaker) Play(cues ...core.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	var streams []beep.Streamer
	for _, c := range cues {
		if st := Streamer(c, s.rate); st != nil {
			streams = append(streams, withVolume(st, s.volume))
		}
	}
	if len(streams) == 0 {
		return
	}

	speaker.Lock()
	s.mixer.Add(streams...)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
