package sim

import (
	"time"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
)

// AdversaryView is the render-facing copy of an adversary.
type AdversaryView struct {
	ID         int
	Color      core.Color
	Behavior   Behavior
	Pos        core.Point
	Facing     Direction
	Scatter    bool
	Vulnerable bool
}

// Snapshot is an immutable view of one tick, enough to render without any
// game logic on the consumer side.
type Snapshot struct {
	Grid             maze.Board
	Player           Player
	Adversaries      []AdversaryView
	Score            int
	PowerUpActive    bool
	PowerUpRemaining time.Duration
	GateReleased     bool
	ItemsLeft        int
	Status           Status
	Tick             uint64
	Clock            time.Duration
	Mode             Mode
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	advs := make([]AdversaryView, len(s.Adversaries))
	for i, a := range s.Adversaries {
		advs[i] = AdversaryView{
			ID:         a.ID,
			Color:      a.Color,
			Behavior:   a.Behavior,
			Pos:        a.Pos,
			Facing:     a.Facing,
			Scatter:    a.Scatter,
			Vulnerable: s.PowerUp.Active,
		}
	}
	return Snapshot{
		Grid:             s.Board(),
		Player:           s.Player,
		Adversaries:      advs,
		Score:            s.Score,
		PowerUpActive:    s.PowerUp.Active,
		PowerUpRemaining: s.PowerUp.Remaining(s.Clock),
		GateReleased:     s.Maze.Released(),
		ItemsLeft:        s.Items.Remaining(),
		Status:           s.Status,
		Tick:             s.Ticks,
		Clock:            s.Clock,
		Mode:             s.Mode,
	}
}
