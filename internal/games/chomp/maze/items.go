package maze

import "github.com/vovakirdan/tui-chomp/internal/core"

// Item is the collectible held by a cell.
type Item uint8

const (
	ItemNone Item = iota
	ItemDot
	ItemBonus
)

// Items is the per-cell collectible layer, indexed [y][x].
// Adversaries pass over items without disturbing them.
type Items [Size][Size]Item

// At returns the item at p, ItemNone off the board.
func (it *Items) At(p core.Point) Item {
	if !InBounds(p) {
		return ItemNone
	}
	return it[p.Y][p.X]
}

// Take removes and returns the item at p.
func (it *Items) Take(p core.Point) Item {
	item := it.At(p)
	if item != ItemNone {
		it[p.Y][p.X] = ItemNone
	}
	return item
}

func (it *Items) set(p core.Point, item Item) {
	it[p.Y][p.X] = item
}

// Count returns how many cells hold the given item.
func (it *Items) Count(item Item) int {
	n := 0
	for y := range it {
		for x := range it[y] {
			if it[y][x] == item {
				n++
			}
		}
	}
	return n
}

// Remaining returns the number of dots plus bonus items left.
func (it *Items) Remaining() int {
	return it.Count(ItemDot) + it.Count(ItemBonus)
}
