package maze

import (
	"strings"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

// Cell is the visible state of one board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellDot
	CellPlayer
	CellAdversary
	CellBarrier
	CellBonus
)

var cellGlyphs = [...]rune{
	CellEmpty:     ' ',
	CellWall:      '#',
	CellDot:       '.',
	CellPlayer:    'C',
	CellAdversary: 'M',
	CellBarrier:   '=',
	CellBonus:     'o',
}

var cellNames = [...]string{
	CellEmpty:     "empty",
	CellWall:      "wall",
	CellDot:       "dot",
	CellPlayer:    "player",
	CellAdversary: "adversary",
	CellBarrier:   "barrier",
	CellBonus:     "bonus",
}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return "unknown"
}

// Glyph returns the single-rune ASCII form of the cell.
func (c Cell) Glyph() rune {
	if int(c) < len(cellGlyphs) {
		return cellGlyphs[c]
	}
	return '?'
}

// Board is the canonical 20x20 cell grid, indexed [y][x].
type Board [Size][Size]Cell

// Compose derives the board from terrain, items and actor positions.
// Precedence per cell: player, adversary, item, terrain. Each cell gets at
// most one marker, so the board always shows exactly one player.
func Compose(m *Maze, items *Items, player core.Point, adversaries []core.Point) Board {
	var b Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := core.Pt(x, y)
			switch m.TerrainAt(p) {
			case TerrainWall:
				b[y][x] = CellWall
			case TerrainBarrier:
				b[y][x] = CellBarrier
			default:
				switch items.At(p) {
				case ItemDot:
					b[y][x] = CellDot
				case ItemBonus:
					b[y][x] = CellBonus
				default:
					b[y][x] = CellEmpty
				}
			}
		}
	}

	for _, a := range adversaries {
		if InBounds(a) {
			b[a.Y][a.X] = CellAdversary
		}
	}
	if InBounds(player) {
		b[player.Y][player.X] = CellPlayer
	}
	return b
}

// At returns the cell at p, CellWall off the board.
func (b *Board) At(p core.Point) Cell {
	if !InBounds(p) {
		return CellWall
	}
	return b[p.Y][p.X]
}

// Count returns how many cells hold the given state.
func (b *Board) Count(c Cell) int {
	n := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x] == c {
				n++
			}
		}
	}
	return n
}

// Find returns every position holding c in row-major order.
func (b *Board) Find(c Cell) []core.Point {
	var pts []core.Point
	for y := range b {
		for x := range b[y] {
			if b[y][x] == c {
				pts = append(pts, core.Pt(x, y))
			}
		}
	}
	return pts
}

// String renders the board as Size lines of glyphs.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for y := range b {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b[y] {
			sb.WriteRune(b[y][x].Glyph())
		}
	}
	return sb.String()
}
