package sim

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
)

// Scoring and timing constants.
const (
	DotScore            = 10
	BonusScore          = 50
	CaptureScore        = 200
	ReleaseScore        = 200
	PowerUpDuration     = 10 * time.Second
	DefaultTickInterval = 200 * time.Millisecond
)

// Status is the session lifecycle phase.
type Status string

const (
	StatusReady    Status = "ready"
	StatusRunning  Status = "running"
	StatusGameOver Status = "game_over"
	StatusVictory  Status = "victory"
)

// Terminal reports whether the status only leaves via reset.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusVictory
}

// Config fixes everything a session needs up front.
type Config struct {
	Mode         Mode
	Seed         int64
	TickInterval time.Duration
}

// State is the whole session aggregate. It is a value: Clone gives an
// independent copy including the RNG stream.
type State struct {
	Mode        Mode
	Status      Status
	Seed        int64
	Interval    time.Duration
	Maze        maze.Maze
	Items       maze.Items
	Player      Player
	Adversaries []Adversary
	Score       int
	PowerUp     PowerUp
	Clock       time.Duration
	Ticks       uint64

	rng rand.PCG
}

// New builds a fresh board for cfg. An unset tick interval falls back to
// DefaultTickInterval.
func New(cfg Config) (State, error) {
	mode, err := ParseMode(string(cfg.Mode))
	if err != nil {
		return State{}, err
	}
	if cfg.TickInterval < 0 {
		return State{}, fmt.Errorf("sim: negative tick interval %v", cfg.TickInterval)
	}
	if cfg.TickInterval == 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	m, items := maze.MustLoadClassic()
	s := State{
		Mode:     mode,
		Status:   StatusReady,
		Seed:     cfg.Seed,
		Interval: cfg.TickInterval,
		Maze:     m,
		Items:    items,
		Player:   Player{Pos: maze.PlayerStart, Facing: DirRight},
		rng:      *rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15),
	}

	r := rand.New(&s.rng)
	n := mode.AdversaryCount()
	s.Adversaries = make([]Adversary, 0, n)
	for i := range n {
		b := Behavior(i)
		spawn := maze.SpawnPoints[i]
		s.Adversaries = append(s.Adversaries, Adversary{
			ID:       i,
			Color:    behaviorColors[b],
			Behavior: b,
			Pos:      spawn,
			Facing:   randomDirection(r),
			Target:   spawn,
			Spawn:    spawn,
		})
	}
	return s, nil
}

// Clone returns a deep copy.
func (s State) Clone() State {
	s.Adversaries = slices.Clone(s.Adversaries)
	return s
}

// GateReleased reports whether the barrier has been opened.
func (s *State) GateReleased() bool {
	return s.Maze.Released()
}

// Board derives the canonical cell grid.
func (s *State) Board() maze.Board {
	return maze.Compose(&s.Maze, &s.Items, s.Player.Pos, s.adversaryPositions())
}

func (s *State) adversaryPositions() []core.Point {
	pts := make([]core.Point, len(s.Adversaries))
	for i, a := range s.Adversaries {
		pts[i] = a.Pos
	}
	return pts
}

// applyDirection sets the player's facing. The first request after a reset
// starts the session; later requests report a turn when the facing changes.
// Terminal states ignore input.
func (s *State) applyDirection(d Direction) []Event {
	if !d.Valid() || s.Status.Terminal() {
		return nil
	}
	prev := s.Player.Facing
	s.Player.Facing = d

	kind := EventTurned
	switch {
	case s.Status == StatusReady:
		s.Status = StatusRunning
		kind = EventStarted
	case d == prev:
		return nil
	}
	return []Event{{Kind: kind, Tick: s.Ticks, Pos: s.Player.Pos, Score: s.Score, AdversaryID: -1, Direction: d}}
}
