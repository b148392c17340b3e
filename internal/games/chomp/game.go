// Package chomp adapts the maze-chase simulation to the platform's Game
// interface: it maps actions to direction requests, paces engine ticks
// against the frame rate, turns engine events into audio cues and draws
// snapshots onto the screen buffer.
package chomp

import (
	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/sim"
	"github.com/vovakirdan/tui-chomp/internal/registry"
)

// Registered mode IDs.
const (
	IDNormal = "chomp"
	IDSimple = "chomp_simple"
)

// Game runs one chomp session at a time.
type Game struct {
	mode           sim.Mode
	session        *sim.Session
	snap           sim.Snapshot
	listeners      []sim.Listener
	hook           SessionHook
	finish         func(sim.State)
	moveEveryTicks int
	moveTicker     int
	paused         bool
	screenW        int
	screenH        int
	err            error
}

// SessionHook runs for every session the game creates. The returned
// func, if any, receives the final state once the session ends or is
// replaced.
type SessionHook func(s *sim.Session) func(final sim.State)

// New creates a game for mode. Reset must be called before stepping.
func New(mode sim.Mode) *Game {
	return &Game{mode: mode}
}

func init() {
	registry.Register(IDNormal, func() registry.Game {
		return New(sim.ModeNormal)
	})
	registry.Register(IDSimple, func() registry.Game {
		return New(sim.ModeSimple)
	})
}

// IDForMode maps a mode to its registry ID.
func IDForMode(m sim.Mode) string {
	if m == sim.ModeSimple {
		return IDSimple
	}
	return IDNormal
}

// ID returns the registry identifier.
func (g *Game) ID() string {
	return IDForMode(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == sim.ModeSimple {
		return "Chomp (Simple)"
	}
	return "Chomp"
}

// Description is shown in the mode menu and by `chomp list`.
func (g *Game) Description() string {
	if g.mode == sim.ModeSimple {
		return "Clear the maze with no adversaries"
	}
	return "Four adversaries: chase, ambush, random, patrol"
}

// Mode returns the simulation mode.
func (g *Game) Mode() sim.Mode {
	return g.mode
}

// Subscribe attaches l to the current session and to every session created
// by later resets.
func (g *Game) Subscribe(l sim.Listener) {
	g.listeners = append(g.listeners, l)
	if g.session != nil {
		g.session.Subscribe(l)
	}
}

// OnSession installs h for sessions created by later resets.
func (g *Game) OnSession(h SessionHook) {
	g.hook = h
}

// Close ends the current session for the hook. It is safe to call more
// than once.
func (g *Game) Close() {
	g.finishSession()
}

func (g *Game) finishSession() {
	if g.finish == nil || g.session == nil {
		return
	}
	f := g.finish
	g.finish = nil
	f(g.session.State())
}

// Session exposes the running session, nil before Reset.
func (g *Game) Session() *sim.Session {
	return g.session
}

// Err reports a failure from the last Reset.
func (g *Game) Err() error {
	return g.err
}

// Reset starts a new session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.moveEveryTicks = cfg.FramesPerStep()
	g.moveTicker = 0
	g.paused = false
	g.finishSession()

	session, err := sim.NewSession(sim.Config{
		Mode:         g.mode,
		Seed:         cfg.Seed,
		TickInterval: cfg.TickInterval,
	})
	g.err = err
	if err != nil {
		g.session = nil
		g.snap = sim.Snapshot{}
		return
	}
	for _, l := range g.listeners {
		session.Subscribe(l)
	}
	g.session = session
	g.snap = session.Snapshot()
	if g.hook != nil {
		g.finish = g.hook(session)
	}
}

// Step consumes one platform frame of input and advances the engine when
// the frame cadence says a tick is due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	var cues []core.Cue
	if in.Has(core.ActionPause) && g.snap.Status == sim.StatusRunning {
		g.paused = !g.paused
	}

	if !g.paused {
		if d := directionFor(in.LastDirection); d != sim.DirNone {
			cues = appendCues(cues, g.session.RequestDirection(d))
		}

		g.moveTicker++
		if g.moveTicker >= g.moveEveryTicks {
			g.moveTicker = 0
			_, events := g.session.Advance()
			cues = appendCues(cues, events)
		}
	}

	g.snap = g.session.Snapshot()
	if g.snap.Status.Terminal() {
		g.finishSession()
	}
	return core.StepResult{State: g.State(), Cues: cues}
}

// State returns score and terminal flags for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		GameOver: g.snap.Status.Terminal(),
		Paused:   g.paused,
	}
}

// Snapshot returns the last engine snapshot seen by the adapter.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

func directionFor(a core.Action) sim.Direction {
	switch a {
	case core.ActionUp:
		return sim.DirUp
	case core.ActionDown:
		return sim.DirDown
	case core.ActionLeft:
		return sim.DirLeft
	case core.ActionRight:
		return sim.DirRight
	default:
		return sim.DirNone
	}
}

var eventCues = map[sim.EventKind]core.Cue{
	sim.EventDotEaten:          core.CueDotEaten,
	sim.EventBonusEaten:        core.CueBonus,
	sim.EventAdversaryCaptured: core.CueCapture,
	sim.EventGateReleased:      core.CueGateOpens,
	sim.EventGameOver:          core.CueGameOver,
	sim.EventVictory:           core.CueVictory,
}

func appendCues(cues []core.Cue, events []sim.Event) []core.Cue {
	for _, e := range events {
		if c, ok := eventCues[e.Kind]; ok {
			cues = append(cues, c)
		}
	}
	return cues
}
