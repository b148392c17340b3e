package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

// ErrBadLandmark is returned by Load when a fixed landmark sits on a wall,
// a barrier or off the board.
var ErrBadLandmark = errors.New("maze: landmark is not on open terrain")

// Terrain is the static kind of a board cell.
type Terrain uint8

const (
	TerrainOpen Terrain = iota
	TerrainWall
	TerrainBarrier
)

// Maze is the terrain layer. It is a value type: copying a Maze copies the
// whole board, which the pure tick function relies on.
type Maze struct {
	terrain  [Size][Size]Terrain
	released bool
}

// Load classifies every cell of a layout and places the starting items.
// Walls and barriers come straight from the layout codes; the player start
// and code-2 cells are open and empty; bonus cells get a bonus item; every
// other open cell gets a dot.
func Load(l Layout, playerStart core.Point, bonus []core.Point) (Maze, Items, error) {
	var m Maze
	var items Items

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch l[y][x] {
			case codeWall:
				m.terrain[y][x] = TerrainWall
			case codeBarrier:
				m.terrain[y][x] = TerrainBarrier
			case codeEmpty:
				m.terrain[y][x] = TerrainOpen
			case codePath:
				m.terrain[y][x] = TerrainOpen
				items[y][x] = ItemDot
			default:
				return Maze{}, Items{}, fmt.Errorf("maze: unknown layout code %d at (%d,%d)", l[y][x], x, y)
			}
		}
	}

	if !InBounds(playerStart) || m.TerrainAt(playerStart) != TerrainOpen {
		return Maze{}, Items{}, fmt.Errorf("player start %v: %w", playerStart, ErrBadLandmark)
	}
	items.set(playerStart, ItemNone)

	for _, p := range bonus {
		if !InBounds(p) || m.TerrainAt(p) != TerrainOpen {
			return Maze{}, Items{}, fmt.Errorf("bonus cell %v: %w", p, ErrBadLandmark)
		}
		items.set(p, ItemBonus)
	}

	return m, items, nil
}

// MustLoadClassic loads the built-in maze with its fixed landmarks.
// The Classic layout is covered by tests, so a failure here is a programming error.
func MustLoadClassic() (Maze, Items) {
	m, items, err := Load(Classic, PlayerStart, BonusCells)
	if err != nil {
		panic(err)
	}
	return m, items
}

// TerrainAt returns the terrain at p. Out-of-bounds cells read as walls.
func (m *Maze) TerrainAt(p core.Point) Terrain {
	if !InBounds(p) {
		return TerrainWall
	}
	return m.terrain[p.Y][p.X]
}

// Passable reports whether an actor may stand on p.
// False for out-of-bounds cells, walls, and barriers until they are released.
func (m *Maze) Passable(p core.Point) bool {
	if !InBounds(p) {
		return false
	}
	switch m.terrain[p.Y][p.X] {
	case TerrainWall, TerrainBarrier:
		return false
	default:
		return true
	}
}

// Released reports whether the barrier cells have been opened.
func (m *Maze) Released() bool {
	return m.released
}

// ReleaseBarriers permanently converts every barrier cell to open terrain
// and returns how many cells changed. Calling it again is a no-op.
func (m *Maze) ReleaseBarriers() int {
	if m.released {
		return 0
	}
	m.released = true

	n := 0
	for y := range m.terrain {
		for x := range m.terrain[y] {
			if m.terrain[y][x] == TerrainBarrier {
				m.terrain[y][x] = TerrainOpen
				n++
			}
		}
	}
	return n
}
