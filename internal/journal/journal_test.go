package journal

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-chomp/internal/games/chomp/sim"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

// memStore is an in-memory journal for tests that need to tamper with
// stored runs.
type memStore struct {
	runs      map[string]storage.Run
	inputs    map[string][]storage.RunInput
	failInput bool
}

func newMemStore() *memStore {
	return &memStore{
		runs:   map[string]storage.Run{},
		inputs: map[string][]storage.RunInput{},
	}
}

func (m *memStore) BeginRun(mode string, seed int64, tick time.Duration) (storage.Run, error) {
	id := strings.Repeat("a", 8) + "-" + string(rune('0'+len(m.runs)))
	run := storage.Run{ID: id, Mode: mode, Seed: seed, TickInterval: tick, StartedAt: time.Now()}
	m.runs[id] = run
	return run, nil
}

func (m *memStore) RecordInput(runID string, tick uint64, direction string) error {
	if m.failInput {
		return errors.New("disk full")
	}
	seq := len(m.inputs[runID]) + 1
	m.inputs[runID] = append(m.inputs[runID], storage.RunInput{Seq: seq, Tick: tick, Direction: direction})
	return nil
}

func (m *memStore) FinishRun(runID, outcome string, ticks uint64, digest string) error {
	run, ok := m.runs[runID]
	if !ok {
		return storage.ErrRunNotFound
	}
	run.FinishedAt = time.Now()
	run.Outcome = outcome
	run.Ticks = ticks
	run.Digest = digest
	m.runs[runID] = run
	return nil
}

func (m *memStore) Run(id string) (storage.Run, error) {
	run, ok := m.runs[id]
	if !ok {
		return storage.Run{}, storage.ErrRunNotFound
	}
	return run, nil
}

func (m *memStore) Inputs(runID string) ([]storage.RunInput, error) {
	return m.inputs[runID], nil
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(&strings.Builder{}, log.Options{Level: log.DebugLevel})
}

func recordAutoPlay(t *testing.T, store Writer, cfg sim.Config, maxTicks uint64) (*Recorder, sim.State) {
	t.Helper()
	session, err := sim.NewSession(cfg)
	require.NoError(t, err)
	rec, err := Attach(store, session, quietLogger())
	require.NoError(t, err)

	final := sim.AutoPlay(session, maxTicks)
	require.NoError(t, rec.Finish(final))
	return rec, final
}

func TestRecordAndReplaySQLite(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer store.Close()

	cfg := sim.Config{Mode: sim.ModeNormal, Seed: 99}
	rec, final := recordAutoPlay(t, store, cfg, 5000)
	require.True(t, final.Status.Terminal() || final.Ticks == 5000)

	run, err := store.Run(rec.ID())
	require.NoError(t, err)
	assert.Equal(t, OutcomeFor(final.Status), run.Outcome)
	assert.Equal(t, final.Ticks, run.Ticks)
	assert.Equal(t, sim.DefaultTickInterval, run.TickInterval)

	res, err := Replay(store, rec.ID()[:8])
	require.NoError(t, err)
	assert.True(t, res.Verified())
	assert.Equal(t, final.Digest(), res.Digest)
	assert.Equal(t, final.Score, res.Final.Score)
	assert.Equal(t, final.Status, res.Final.Status)
	assert.Equal(t, rec.Inputs(), res.Inputs)
	assert.Equal(t, final.Clock, res.Duration())
}

func TestReplaySimpleModeVictory(t *testing.T) {
	store := newMemStore()
	cfg := sim.Config{Mode: sim.ModeSimple, Seed: 5, TickInterval: 100 * time.Millisecond}
	rec, final := recordAutoPlay(t, store, cfg, 20000)
	require.Equal(t, sim.StatusVictory, final.Status)

	res, err := Replay(store, rec.ID())
	require.NoError(t, err)
	assert.True(t, res.Verified())
	assert.Equal(t, "victory", res.Outcome())
	assert.Greater(t, res.Inputs, 1)
}

func TestReplayAbandonedRun(t *testing.T) {
	store := newMemStore()
	rec, final := recordAutoPlay(t, store, sim.Config{Mode: sim.ModeSimple, Seed: 3}, 40)
	require.Equal(t, sim.StatusRunning, final.Status)

	run, _ := store.Run(rec.ID())
	assert.Equal(t, OutcomeAbandoned, run.Outcome)

	res, err := Replay(store, rec.ID())
	require.NoError(t, err)
	assert.True(t, res.Verified())
	assert.Equal(t, uint64(40), res.Final.Ticks)
}

func TestReplayDetectsTampering(t *testing.T) {
	store := newMemStore()
	rec, _ := recordAutoPlay(t, store, sim.Config{Mode: sim.ModeNormal, Seed: 11}, 60)

	run := store.runs[rec.ID()]
	run.Digest = "0000000000000000"
	store.runs[rec.ID()] = run

	res, err := Replay(store, rec.ID())
	require.ErrorIs(t, err, ErrDigestMismatch)
	assert.False(t, res.Verified())
}

func TestReplayUnfinishedRunStopsAtLastInput(t *testing.T) {
	store := newMemStore()
	session, err := sim.NewSession(sim.Config{Mode: sim.ModeSimple, Seed: 1})
	require.NoError(t, err)
	rec, err := Attach(store, session, quietLogger())
	require.NoError(t, err)

	session.RequestDirection(sim.DirLeft)
	for i := 0; i < 3; i++ {
		session.Advance()
	}
	session.RequestDirection(sim.DirRight)

	res, err := Replay(store, rec.ID())
	require.NoError(t, err)
	assert.False(t, res.Verified())
	assert.Equal(t, uint64(3), res.Final.Ticks)
	assert.Equal(t, sim.DirRight, res.Final.Player.Facing)
}

func TestReplayUnknownRun(t *testing.T) {
	_, err := Replay(newMemStore(), "nope")
	assert.ErrorIs(t, err, storage.ErrRunNotFound)
}

func TestReplayRejectsBadInput(t *testing.T) {
	store := newMemStore()
	run, _ := store.BeginRun("normal", 1, time.Second)
	store.inputs[run.ID] = []storage.RunInput{{Seq: 1, Tick: 0, Direction: "sideways"}}

	_, err := Replay(store, run.ID)
	assert.ErrorContains(t, err, "sideways")
}

func TestRecorderFinishOnce(t *testing.T) {
	store := newMemStore()
	rec, final := recordAutoPlay(t, store, sim.Config{Mode: sim.ModeSimple, Seed: 2}, 5)
	assert.ErrorIs(t, rec.Finish(final), ErrFinished)
}

func TestRecorderKeepsOnlyDirectionEvents(t *testing.T) {
	store := newMemStore()
	rec, err := Begin(store, sim.Config{Mode: sim.ModeNormal}, quietLogger())
	require.NoError(t, err)

	rec.Listener()(sim.Snapshot{}, []sim.Event{
		{Kind: sim.EventStarted, Tick: 0, Direction: sim.DirLeft},
		{Kind: sim.EventDotEaten, Tick: 1},
		{Kind: sim.EventTurned, Tick: 4, Direction: sim.DirUp},
		{Kind: sim.EventGameOver, Tick: 9},
	})

	got := store.inputs[rec.ID()]
	require.Len(t, got, 2)
	assert.Equal(t, storage.RunInput{Seq: 1, Tick: 0, Direction: "left"}, got[0])
	assert.Equal(t, storage.RunInput{Seq: 2, Tick: 4, Direction: "up"}, got[1])
	assert.Equal(t, 2, rec.Inputs())
}

func TestRecorderSurvivesStoreFailures(t *testing.T) {
	store := newMemStore()
	store.failInput = true
	var out strings.Builder
	logger := log.NewWithOptions(&out, log.Options{Level: log.DebugLevel})

	rec, err := Begin(store, sim.Config{Mode: sim.ModeNormal}, logger)
	require.NoError(t, err)
	rec.Listener()(sim.Snapshot{}, []sim.Event{{Kind: sim.EventStarted, Direction: sim.DirLeft}})

	assert.Equal(t, 0, rec.Inputs())
	assert.Contains(t, out.String(), "journal input dropped")
}

func TestBeginRejectsUnknownMode(t *testing.T) {
	_, err := Begin(newMemStore(), sim.Config{Mode: "arcade"}, nil)
	assert.ErrorIs(t, err, sim.ErrUnknownMode)
}

func TestOutcomeFor(t *testing.T) {
	assert.Equal(t, "victory", OutcomeFor(sim.StatusVictory))
	assert.Equal(t, "game_over", OutcomeFor(sim.StatusGameOver))
	assert.Equal(t, OutcomeAbandoned, OutcomeFor(sim.StatusRunning))
	assert.Equal(t, OutcomeAbandoned, OutcomeFor(sim.StatusReady))
}
