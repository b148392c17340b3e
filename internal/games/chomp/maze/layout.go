// Package maze holds the static board model for chomp: the terrain layout,
// the collectible item layer and the derived cell grid. It answers
// passability questions and knows nothing about actors' behavior.
package maze

import "github.com/vovakirdan/tui-chomp/internal/core"

// Size is the width and height of the square board.
const Size = 20

// Layout codes used by the compile-time maze description.
const (
	codePath    = 0 // open path that starts with a dot
	codeWall    = 1
	codeEmpty   = 2 // open path that starts without a dot
	codeBarrier = 3 // temporary barrier sealing the enclosure
)

// Layout is a raw maze description, indexed [y][x].
type Layout [Size][Size]uint8

// Classic is the single built-in maze. Row 10 is a dead-end corridor that
// runs to both board edges; there is no wrap-around.
var Classic = Layout{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0, 1},
	{1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 0, 1, 0, 1, 1, 3, 3, 1, 1, 0, 1, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0, 0, 0},
	{1, 1, 1, 1, 0, 1, 0, 1, 2, 2, 2, 2, 1, 0, 1, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0, 1},
	{1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1},
	{1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1},
	{1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// Fixed landmarks of the Classic maze.
var (
	// PlayerStart is one row above the barrier.
	PlayerStart = core.Pt(10, 8)

	// BonusCells hold the four bonus collectibles.
	BonusCells = []core.Point{
		core.Pt(1, 1),
		core.Pt(1, 18),
		core.Pt(18, 1),
		core.Pt(18, 18),
	}

	// Enclosure is the adversary spawn pen, x 8..11 and y 9..11 inclusive.
	Enclosure = core.NewRect(8, 9, 4, 3)

	// SpawnPoints are the adversary start cells, one per behavior id.
	SpawnPoints = []core.Point{
		core.Pt(9, 10),
		core.Pt(10, 10),
		core.Pt(9, 11),
		core.Pt(10, 11),
	}

	// Corners is the patrol cycle and the scatter target table.
	Corners = []core.Point{
		core.Pt(1, 1),
		core.Pt(Size-2, 1),
		core.Pt(Size-2, Size-2),
		core.Pt(1, Size-2),
	}
)

// InBounds reports whether p lies on the board.
func InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}
