package chomp

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/sim"
)

// Board layout on screen: every cell is cellW columns wide, under a
// hudHeight-line status bar.
const (
	cellW     = 2
	hudHeight = 2
	boardW    = maze.Size * cellW
	boardH    = maze.Size
)

// blinkWindow is how long before expiry vulnerable adversaries start flashing.
const blinkWindow = 2 * time.Second

var playerGlyphs = map[sim.Direction]rune{
	sim.DirUp:    'v',
	sim.DirDown:  '^',
	sim.DirLeft:  '>',
	sim.DirRight: '<',
}

// Render draws the board, the HUD and any status overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}
	if g.session == nil {
		msg := "No session"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, "Error", msg)
		return
	}

	ox, oy := g.boardOrigin(dst)
	g.renderBoard(dst, ox, oy)
	g.renderActors(dst, ox, oy)

	switch {
	case g.snap.Status == sim.StatusReady:
		g.renderOverlay(dst, "CHOMP", "Press an arrow key to start")
	case g.snap.Status == sim.StatusVictory:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Score: %d  -  R to play again", g.snap.Score))
	case g.snap.Status == sim.StatusGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  -  R to restart", g.snap.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) boardOrigin(dst *core.Screen) (int, int) {
	ox := (dst.Width() - boardW) / 2
	oy := hudHeight + max(0, (dst.Height()-hudHeight-boardH)/2)
	return ox, oy
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s - Score: %d  Items: %d", g.Title(), g.snap.Score, g.snap.ItemsLeft)
	dst.DrawText(0, 0, hud)

	x := len(hud) + 2
	if g.snap.PowerUpActive {
		power := fmt.Sprintf("POWER %.1fs", g.snap.PowerUpRemaining.Seconds())
		dst.DrawTextColored(x, 0, power, core.ColorBrightBlue)
		x += len(power) + 2
	}
	if g.mode == sim.ModeNormal {
		if g.snap.GateReleased {
			dst.DrawTextColored(x, 0, "GATE OPEN", core.ColorPink)
		} else {
			dst.DrawTextColored(x, 0, fmt.Sprintf("Gate at %d", sim.ReleaseScore), core.ColorGray)
		}
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)
}

// renderBoard draws terrain and items. Actors are drawn on top afterwards.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	for y := 0; y < maze.Size; y++ {
		for x := 0; x < maze.Size; x++ {
			sx, sy := ox+x*cellW, oy+y
			switch g.snap.Grid[y][x] {
			case maze.CellWall:
				dst.DrawTextColored(sx, sy, "██", core.ColorBlue)
			case maze.CellDot:
				dst.DrawTextColored(sx, sy, " ·", core.ColorWhite)
			case maze.CellBonus:
				dst.DrawTextColored(sx, sy, " ●", core.ColorBrightRed)
			case maze.CellBarrier:
				dst.DrawTextColored(sx, sy, "══", core.ColorPink)
			}
		}
	}
}

func (g *Game) renderActors(dst *core.Screen, ox, oy int) {
	blink := g.snap.PowerUpRemaining > 0 && g.snap.PowerUpRemaining <= blinkWindow && g.snap.Tick%2 == 0
	for _, a := range g.snap.Adversaries {
		color := a.Color
		if a.Vulnerable {
			color = core.ColorBrightBlue
			if blink {
				color = core.ColorBrightWhite
			}
		}
		dst.SetColored(ox+a.Pos.X*cellW+1, oy+a.Pos.Y, 'Ω', color)
	}

	p := g.snap.Player
	glyph, ok := playerGlyphs[p.Facing]
	if !ok {
		glyph = 'O'
	}
	dst.SetColored(ox+p.Pos.X*cellW+1, oy+p.Pos.Y, glyph, core.ColorYellow)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
