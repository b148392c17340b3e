package chomp

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/sim"
	"github.com/vovakirdan/tui-chomp/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		TickInterval: 50 * time.Millisecond, // 3 frames per engine tick
		Seed:         12345,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDNormal, IDSimple} {
		if !registry.Exists(id) {
			t.Fatalf("%s not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestWaitsForFirstDirection(t *testing.T) {
	g := New(sim.ModeNormal)
	g.Reset(testConfig())

	for range 30 {
		g.Step(frame())
	}
	snap := g.Snapshot()
	if snap.Status != sim.StatusReady || snap.Tick != 0 {
		t.Fatalf("status=%s tick=%d, want ready at tick 0", snap.Status, snap.Tick)
	}
}

func TestCadenceAndCues(t *testing.T) {
	g := New(sim.ModeSimple)
	g.Reset(testConfig())

	res := g.Step(frame(core.ActionRight))
	if g.Snapshot().Status != sim.StatusRunning {
		t.Fatal("direction should start the session")
	}
	if len(res.Cues) != 0 {
		t.Errorf("no tick yet, got cues %v", res.Cues)
	}

	res = g.Step(frame())
	if g.Snapshot().Tick != 0 {
		t.Fatal("engine ticked before the cadence")
	}
	res = g.Step(frame())
	if g.Snapshot().Tick != 1 {
		t.Fatalf("tick = %d after 3 frames, want 1", g.Snapshot().Tick)
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueDotEaten {
		t.Errorf("cues = %v, want [dotEaten]", res.Cues)
	}
	if res.State.Score != sim.DotScore {
		t.Errorf("score = %d, want %d", res.State.Score, sim.DotScore)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	g := New(sim.ModeSimple)
	g.Reset(testConfig())
	g.Step(frame(core.ActionLeft))

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action should pause a running game")
	}
	before := g.Snapshot().Tick
	for range 20 {
		g.Step(frame(core.ActionDown))
	}
	if g.Snapshot().Tick != before {
		t.Error("ticks advanced while paused")
	}
	if g.Snapshot().Player.Facing != sim.DirLeft {
		t.Error("input applied while paused")
	}

	g.Step(frame(core.ActionPause))
	for range 3 {
		g.Step(frame())
	}
	if g.Snapshot().Tick == before {
		t.Error("ticks should resume after unpause")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() sim.Snapshot {
		g := New(sim.ModeNormal)
		g.Reset(testConfig())
		dirs := []core.Action{core.ActionLeft, core.ActionDown, core.ActionRight, core.ActionUp}
		for i := range 600 {
			f := frame()
			if i%37 == 0 {
				f.Set(dirs[(i/37)%len(dirs)])
			}
			g.Step(f)
		}
		return g.Snapshot()
	}
	a, b := run(), run()
	if a.Tick != b.Tick || a.Score != b.Score || a.Player != b.Player || a.Grid != b.Grid {
		t.Errorf("runs diverged: %+v vs %+v", a.Player, b.Player)
	}
}

func TestListenersSurviveReset(t *testing.T) {
	g := New(sim.ModeSimple)
	started := 0
	g.Subscribe(func(_ sim.Snapshot, events []sim.Event) {
		if sim.Has(events, sim.EventStarted) {
			started++
		}
	})

	g.Reset(testConfig())
	g.Step(frame(core.ActionUp))
	g.Reset(testConfig())
	g.Step(frame(core.ActionUp))

	if started != 2 {
		t.Errorf("started events = %d, want 2", started)
	}
}

func TestResetRejectsBadMode(t *testing.T) {
	g := New(sim.Mode("turbo"))
	g.Reset(testConfig())
	if g.Err() == nil {
		t.Fatal("expected error for unknown mode")
	}
	res := g.Step(frame(core.ActionUp))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("unexpected state %+v", res.State)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "unknown mode") {
		t.Error("render should surface the reset error")
	}
}

func TestRender(t *testing.T) {
	g := New(sim.ModeNormal)
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Chomp", "Score: 0", "Press an arrow key to start", "Gate at 200"} {
		if !strings.Contains(out, want) {
			t.Errorf("ready screen missing %q", want)
		}
	}

	g.Step(frame(core.ActionRight))
	g.Render(screen)
	out = screen.String()
	if strings.Contains(out, "Press an arrow key") {
		t.Error("start prompt should disappear once running")
	}
	if strings.Count(out, "Ω") != 4 {
		t.Errorf("want 4 adversaries on screen, got %d", strings.Count(out, "Ω"))
	}
	if !strings.Contains(out, "<") {
		t.Error("player glyph facing right missing")
	}

	ox, oy := g.boardOrigin(screen)
	if got := screen.GetCell(ox, oy); got.Rune != '█' || got.Color != core.ColorBlue {
		t.Errorf("top-left wall cell = %+v", got)
	}
	bonus := maze.BonusCells[0]
	if got := screen.Get(ox+bonus.X*cellW+1, oy+bonus.Y); got != '●' {
		t.Errorf("bonus glyph = %q", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(sim.ModeSimple)
	g.Reset(testConfig())
	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too-small message")
	}
}

func TestGameOverOverlay(t *testing.T) {
	g := New(sim.ModeNormal)
	g.Reset(testConfig())
	g.snap.Status = sim.StatusGameOver
	g.snap.Score = 340

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Game Over") || !strings.Contains(out, "Score: 340") {
		t.Error("game over overlay should show the final score")
	}
	if !g.State().GameOver {
		t.Error("game over should be terminal for the platform")
	}
}

func TestSessionHook(t *testing.T) {
	g := New(sim.ModeSimple)

	var sessions int
	var finals []sim.State
	g.OnSession(func(s *sim.Session) func(sim.State) {
		sessions++
		return func(final sim.State) { finals = append(finals, final) }
	})

	g.Reset(testConfig())
	for range 9 {
		g.Step(frame(core.ActionLeft))
	}
	g.Reset(testConfig())
	if sessions != 2 {
		t.Fatalf("hook ran %d times, want 2", sessions)
	}
	if len(finals) != 1 {
		t.Fatalf("finish ran %d times, want 1", len(finals))
	}
	if finals[0].Ticks != 3 || finals[0].Status != sim.StatusRunning {
		t.Errorf("replaced session final = tick %d %s, want tick 3 running", finals[0].Ticks, finals[0].Status)
	}

	g.Close()
	g.Close()
	if len(finals) != 2 {
		t.Fatalf("finish ran %d times after Close, want 2", len(finals))
	}
	if finals[1].Status != sim.StatusReady {
		t.Errorf("second session final status = %s, want ready", finals[1].Status)
	}
}
