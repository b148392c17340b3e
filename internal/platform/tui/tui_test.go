package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/sim"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

// cueRecorder collects played cues.
type cueRecorder struct {
	cues []core.Cue
}

func (r *cueRecorder) Play(cues ...core.Cue) { r.cues = append(r.cues, cues...) }
func (r *cueRecorder) Close()                {}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      80,
		ScreenH:      25,
		TickRate:     60,
		TickInterval: 50 * time.Millisecond,
		Seed:         7,
	}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey("w"), core.ActionUp},
		{runeKey("k"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey("j"), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey("a"), core.ActionLeft},
		{runeKey("h"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey("d"), core.ActionRight},
		{runeKey("l"), core.ActionRight},
		{runeKey("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runeKey("r"), core.ActionRestart},
		{runeKey("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{runeKey("x"), core.ActionNone},
	}
	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestModelDrivesGame(t *testing.T) {
	game := chomp.New(sim.ModeSimple)
	cues := &cueRecorder{}
	m := NewModel(game, testConfig(), Options{Audio: cues})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	for range 3 {
		next, _ = m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}

	if game.Snapshot().Status != sim.StatusRunning {
		t.Fatalf("status = %s, want running", game.Snapshot().Status)
	}
	if m.GameState().Score != sim.DotScore {
		t.Errorf("score = %d, want %d", m.GameState().Score, sim.DotScore)
	}
	if len(cues.cues) != 1 || cues.cues[0] != core.CueDotEaten {
		t.Errorf("cues = %v, want [dotEaten]", cues.cues)
	}

	view := m.View()
	if !strings.Contains(view, "Score") {
		t.Error("view should show the HUD")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should show the help footer")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := chomp.New(sim.ModeSimple)
	m := NewModel(game, testConfig(), Options{})
	session := game.Session()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if game.Session() != session {
		t.Error("resize should not replace the session")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(chomp.New(sim.ModeSimple), testConfig(), Options{})
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	game := chomp.New(sim.ModeSimple)
	m := NewModel(game, testConfig(), Options{})
	session := game.Session()

	next, _ := m.Update(runeKey("r"))
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Now()))

	if game.Session() != session {
		t.Error("restart must only work after the game is over")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(chomp.New(sim.ModeNormal), testConfig(), Options{ScreenshotDir: dir})

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if filepath.Dir(path) != dir || !strings.HasPrefix(filepath.Base(path), chomp.IDNormal+"_") {
		t.Errorf("unexpected screenshot path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading screenshot: %v", err)
	}
	if !strings.Contains(string(data), "CHOMP") {
		t.Error("screenshot should contain the ready overlay")
	}
}

type fakeRuns []storage.Run

func (f fakeRuns) RecentRuns(limit int) ([]storage.Run, error) {
	return f[:min(limit, len(f))], nil
}

func TestMenuSelectsMode(t *testing.T) {
	runs := fakeRuns{{ID: "0123456789abcdef", Mode: "normal", Outcome: "victory", Ticks: 512}}
	m := NewMenuModel(runs, testConfig())

	if len(m.items) < 2 {
		t.Fatalf("menu lists %d modes, want at least 2", len(m.items))
	}
	view := m.View()
	if !strings.Contains(view, "01234567") || !strings.Contains(view, "victory") {
		t.Error("menu should list recent runs")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil || m.Selected() == nil {
		t.Fatal("enter should select a mode")
	}
	if m.Selected().ID != m.items[1].ID {
		t.Errorf("selected %s, want %s", m.Selected().ID, m.items[1].ID)
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'a', core.ColorPink)
	s.SetColored(1, 0, 'b', core.ColorPink)
	s.Set(2, 0, 'c')

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "c") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}
