package sim

import "github.com/vovakirdan/tui-chomp/internal/core"

// Player is the single player-controlled agent.
type Player struct {
	Pos    core.Point
	Facing Direction
}

// Adversary is an autonomous pursuer. Adversaries are created when the board
// is built and only ever repositioned afterwards.
type Adversary struct {
	ID       int
	Color    core.Color
	Behavior Behavior
	Pos      core.Point
	Facing   Direction
	Target   core.Point
	Scatter  bool
	// PatrolIdx is the current waypoint into maze.Corners.
	PatrolIdx int
	Spawn     core.Point
}

var behaviorColors = map[Behavior]core.Color{
	BehaviorChase:  core.ColorRed,
	BehaviorAmbush: core.ColorPink,
	BehaviorRandom: core.ColorCyan,
	BehaviorPatrol: core.ColorOrange,
}
