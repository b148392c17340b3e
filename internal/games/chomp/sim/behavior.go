package sim

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
)

// Behavior is the adversary's movement heuristic. The numeric value doubles
// as the behavior id used to pick a scatter corner.
type Behavior uint8

const (
	BehaviorChase Behavior = iota
	BehaviorAmbush
	BehaviorRandom
	BehaviorPatrol
)

// Heuristic tuning.
const (
	AmbushLead    = 4
	ScatterChance = 0.005
	WanderChance  = 0.10
)

var behaviorNames = [...]string{
	BehaviorChase:  "chase",
	BehaviorAmbush: "ambush",
	BehaviorRandom: "random",
	BehaviorPatrol: "patrol",
}

func (b Behavior) String() string {
	if int(b) < len(behaviorNames) {
		return behaviorNames[b]
	}
	return "unknown"
}

// scatters reports whether the behavior takes part in scatter toggling.
func (b Behavior) scatters() bool {
	return b != BehaviorRandom
}

// steering picks the direction an adversary will try to move this tick.
type steering func(s *State, a *Adversary, r *rand.Rand) Direction

// behaviors is the dispatch table for adversary decisions.
var behaviors = map[Behavior]steering{
	BehaviorChase:  seek(chaseTarget),
	BehaviorAmbush: seek(ambushTarget),
	BehaviorRandom: wander,
	BehaviorPatrol: seek(patrolTarget),
}

func chaseTarget(s *State, _ *Adversary) core.Point {
	return s.Player.Pos
}

func ambushTarget(s *State, _ *Adversary) core.Point {
	t := s.Player.Pos.Add(s.Player.Facing.Delta().Scale(AmbushLead))
	return core.Pt(core.Clamp(t.X, 0, maze.Size-1), core.Clamp(t.Y, 0, maze.Size-1))
}

func patrolTarget(_ *State, a *Adversary) core.Point {
	if a.Pos.Chebyshev(maze.Corners[a.PatrolIdx]) <= 1 {
		a.PatrolIdx = (a.PatrolIdx + 1) % len(maze.Corners)
	}
	return maze.Corners[a.PatrolIdx]
}

// scatterCorner is the retreat target for a behavior id.
func scatterCorner(b Behavior) core.Point {
	return maze.Corners[int(b)%len(maze.Corners)]
}

// seek wraps a targeting function with the scatter override and greedy
// direction selection shared by every targeted behavior.
func seek(target func(s *State, a *Adversary) core.Point) steering {
	return func(s *State, a *Adversary, r *rand.Rand) Direction {
		if a.Scatter {
			a.Target = scatterCorner(a.Behavior)
		} else {
			a.Target = target(s, a)
		}
		return chooseDirection(&s.Maze, a.Pos, a.Facing, a.Target, r)
	}
}

// wander holds the current facing, occasionally switching to a random open one.
func wander(s *State, a *Adversary, r *rand.Rand) Direction {
	a.Target = a.Pos
	if r.Float64() < WanderChance {
		if d, ok := randomPassable(&s.Maze, a.Pos, r); ok {
			return d
		}
	}
	return a.Facing
}

// chooseDirection picks the passable non-reverse direction whose next cell is
// closest to target by Manhattan distance, ties going to evalOrder. A reversal
// is only possible through the random fallback when nothing else is open.
func chooseDirection(m *maze.Maze, pos core.Point, facing Direction, target core.Point, r *rand.Rand) Direction {
	reverse := facing.Reverse()
	best, bestDist := DirNone, math.MaxInt
	for _, d := range evalOrder {
		if d == reverse {
			continue
		}
		next := pos.Add(d.Delta())
		if !m.Passable(next) {
			continue
		}
		if dist := next.Manhattan(target); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if best != DirNone {
		return best
	}
	if d, ok := randomPassable(m, pos, r); ok {
		return d
	}
	return randomDirection(r)
}
