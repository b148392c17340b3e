package sim

import (
	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
)

// Autopilot picks the first step of a shortest path to the nearest item.
// Cells next to a dangerous adversary are avoided when any other route
// exists. It is deterministic, so seeded headless runs are reproducible.
func Autopilot(s *State) Direction {
	if d := s.pathToItem(true); d != DirNone {
		return d
	}
	return s.pathToItem(false)
}

func (s *State) pathToItem(avoid bool) Direction {
	var danger [maze.Size][maze.Size]bool
	if avoid && !s.PowerUp.Active {
		for _, a := range s.Adversaries {
			for _, d := range append(evalOrder[:], DirNone) {
				p := a.Pos.Add(d.Delta())
				if maze.InBounds(p) {
					danger[p.Y][p.X] = true
				}
			}
		}
	}

	type node struct {
		pos   core.Point
		first Direction
	}
	var seen [maze.Size][maze.Size]bool
	start := s.Player.Pos
	seen[start.Y][start.X] = true
	queue := []node{{pos: start}}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, d := range evalOrder {
			p := n.pos.Add(d.Delta())
			if !s.Maze.Passable(p) || seen[p.Y][p.X] || danger[p.Y][p.X] {
				continue
			}
			seen[p.Y][p.X] = true
			first := n.first
			if first == DirNone {
				first = d
			}
			if s.Items.At(p) != maze.ItemNone {
				return first
			}
			queue = append(queue, node{pos: p, first: first})
		}
	}
	return DirNone
}

// AutoPlay drives s with Autopilot until the game ends or maxTicks ticks
// have run, and returns the final state.
func AutoPlay(s *Session, maxTicks uint64) State {
	for {
		st := s.State()
		if st.Status.Terminal() || st.Ticks >= maxTicks {
			return st
		}
		s.RequestDirection(Autopilot(&st))
		if s.Snapshot().Status == StatusReady {
			return s.State()
		}
		s.Advance()
	}
}
