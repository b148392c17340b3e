package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
)

// running builds a started state for mode with a fixed seed.
func running(t *testing.T, mode Mode) State {
	t.Helper()
	s, err := New(Config{Mode: mode, Seed: 42})
	require.NoError(t, err)
	s.Status = StatusRunning
	return s
}

// keepOnly removes every item except the ones at keep.
func keepOnly(s *State, keep ...core.Point) {
	for y := 0; y < maze.Size; y++ {
		for x := 0; x < maze.Size; x++ {
			p := core.Pt(x, y)
			if !contains(keep, p) {
				s.Items.Take(p)
			}
		}
	}
}

func contains(pts []core.Point, p core.Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
