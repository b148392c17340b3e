package sim

import (
	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
)

// contact resolves the player and adversary i sharing a cell, whichever of
// them moved. Without a power-up the session ends. With one the adversary is
// captured. It reports whether the session is still running.
func (st *step) contact(i int) bool {
	s := st.s
	a := &s.Adversaries[i]

	if !s.PowerUp.Active {
		s.Status = StatusGameOver
		st.emit(EventGameOver, s.Player.Pos, a.ID)
		return false
	}

	at := a.Pos
	a.Pos = s.respawnCell(i)
	a.Scatter = false
	s.Score += CaptureScore
	st.emit(EventAdversaryCaptured, at, a.ID)
	st.evaluateGate()
	return true
}

// respawnCell is the first empty enclosure cell in row-major order, or the
// adversary's spawn when the enclosure is full.
func (s *State) respawnCell(i int) core.Point {
	for _, p := range maze.Enclosure.Points() {
		if s.vacant(p, i) {
			return p
		}
	}
	return s.Adversaries[i].Spawn
}

// vacant reports whether p is open, itemless and free of the player and of
// every adversary other than skip.
func (s *State) vacant(p core.Point, skip int) bool {
	if s.Maze.TerrainAt(p) != maze.TerrainOpen || s.Items.At(p) != maze.ItemNone {
		return false
	}
	if p == s.Player.Pos {
		return false
	}
	for j, a := range s.Adversaries {
		if j != skip && a.Pos == p {
			return false
		}
	}
	return true
}
