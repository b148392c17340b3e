package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sweep is a sine whose pitch and gain both glide exponentially from their
// start to their end value over the tone's duration.
type sweep struct {
	rate             beep.SampleRate
	fromHz, toHz     float64
	fromGain, toGain float64
	total, pos       int
	phase            float64
}

// newSweep builds a sine glide. Frequencies and gains must be positive.
func newSweep(rate beep.SampleRate, d time.Duration, fromHz, toHz, fromGain, toGain float64) *sweep {
	return &sweep{
		rate:     rate,
		fromHz:   fromHz,
		toHz:     toHz,
		fromGain: fromGain,
		toGain:   toGain,
		total:    max(rate.N(d), 1),
	}
}

// glide interpolates exponentially, like a Web Audio ramp.
func glide(from, to, t float64) float64 {
	return from * math.Pow(to/from, t)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.total)
		val := math.Sin(2*math.Pi*s.phase) * glide(s.fromGain, s.toGain, t)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += glide(s.fromHz, s.toHz, t) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// tone is a note with a fast fade out.
func tone(rate beep.SampleRate, d time.Duration, hz, gain float64) beep.Streamer {
	return newSweep(rate, d, hz, hz, gain, gain*0.05)
}

// withVolume scales s by a linear factor. Zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
