package sim

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
)

// Input is what the outside world contributes to one tick.
type Input struct {
	// Direction, when set, is applied to the player's facing before the tick runs.
	Direction Direction
}

// step carries the per-tick working set.
type step struct {
	s      *State
	r      *rand.Rand
	events []Event
}

func (st *step) emit(kind EventKind, pos core.Point, adversaryID int) {
	st.events = append(st.events, Event{
		Kind:        kind,
		Tick:        st.s.Ticks,
		Pos:         pos,
		Score:       st.s.Score,
		AdversaryID: adversaryID,
	})
}

// Tick advances prev by one engine step and returns the new state with the
// events it produced. prev is never modified.
//
// Order within a tick: clock and power-up expiry, player move with cell
// effects, adversary moves, then the victory check when the player moved.
// Ready and terminal states come back unchanged apart from the input.
func Tick(prev State, in Input) (State, []Event) {
	s := prev.Clone()
	st := &step{s: &s}
	st.events = append(st.events, s.applyDirection(in.Direction)...)

	if s.Status != StatusRunning {
		return s, st.events
	}

	st.r = rand.New(&s.rng)
	s.Ticks++
	s.Clock += s.Interval

	if s.PowerUp.expire(s.Clock) {
		st.emit(EventPowerUpExpired, s.Player.Pos, -1)
	}

	moved := st.movePlayer()
	if s.Status != StatusRunning {
		return s, st.events
	}

	for i := range s.Adversaries {
		st.moveAdversary(i)
		if s.Status != StatusRunning {
			return s, st.events
		}
	}

	if moved && s.Items.Remaining() == 0 {
		s.Status = StatusVictory
		st.emit(EventVictory, s.Player.Pos, -1)
	}
	return s, st.events
}

// movePlayer steps the player along its facing and applies cell effects.
// It reports whether the position changed.
func (st *step) movePlayer() bool {
	s := st.s
	next := s.Player.Pos.Add(s.Player.Facing.Delta())
	if next == s.Player.Pos || !s.Maze.Passable(next) {
		return false
	}
	s.Player.Pos = next

	switch s.Items.Take(next) {
	case maze.ItemDot:
		s.Score += DotScore
		st.emit(EventDotEaten, next, -1)
		st.evaluateGate()
	case maze.ItemBonus:
		s.Score += BonusScore
		s.PowerUp.Arm(s.Clock)
		st.emit(EventBonusEaten, next, -1)
		st.evaluateGate()
	}

	for i := range s.Adversaries {
		if s.Adversaries[i].Pos != next {
			continue
		}
		if !st.contact(i) {
			break
		}
	}
	return true
}

// moveAdversary runs one adversary's decision and move.
func (st *step) moveAdversary(i int) {
	s := st.s
	a := &s.Adversaries[i]

	if a.Behavior.scatters() && st.r.Float64() < ScatterChance {
		a.Scatter = !a.Scatter
	}

	a.Facing = behaviors[a.Behavior](s, a, st.r)
	next := a.Pos.Add(a.Facing.Delta())
	if !s.Maze.Passable(next) {
		a.Facing = randomDirection(st.r)
		return
	}
	if !s.Maze.Released() && maze.Enclosure.Contains(a.Pos) && !maze.Enclosure.Contains(next) {
		a.Facing = randomDirection(st.r)
		return
	}

	a.Pos = next
	if next == s.Player.Pos {
		st.contact(i)
	}
}

// evaluateGate opens the barrier the first time the score reaches
// ReleaseScore in normal mode.
func (st *step) evaluateGate() {
	s := st.s
	if s.Mode != ModeNormal || s.Maze.Released() || s.Score < ReleaseScore {
		return
	}
	s.Maze.ReleaseBarriers()
	st.emit(EventGateReleased, s.Player.Pos, -1)
}
