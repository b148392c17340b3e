package sim

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
)

// Direction is a cardinal facing. DirNone means "no request".
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// evalOrder is the fixed order used for scoring and tie-breaking.
var evalOrder = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

var directionNames = [...]string{
	DirNone:  "none",
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta is the one-cell step for d.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	case DirRight:
		return core.Pt(1, 0)
	default:
		return core.Point{}
	}
}

// Reverse returns the opposite direction. DirNone has no reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// ParseDirection converts a direction name back into a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range evalOrder {
		if directionNames[d] == name {
			return d, nil
		}
	}
	return DirNone, fmt.Errorf("sim: unknown direction %q", s)
}

func randomDirection(r *rand.Rand) Direction {
	return evalOrder[r.IntN(len(evalOrder))]
}

// randomPassable picks uniformly among the passable neighbours of pos.
func randomPassable(m *maze.Maze, pos core.Point, r *rand.Rand) (Direction, bool) {
	var open [4]Direction
	n := 0
	for _, d := range evalOrder {
		if m.Passable(pos.Add(d.Delta())) {
			open[n] = d
			n++
		}
	}
	if n == 0 {
		return DirNone, false
	}
	return open[r.IntN(n)], true
}
