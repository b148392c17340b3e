// Package journal records chomp sessions into the storage journal and
// replays them headlessly. A run is reproduced from its seed, mode, tick
// interval and the ordered direction requests; the final state digest
// proves the replay matched.
package journal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chomp/internal/games/chomp/sim"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

// OutcomeAbandoned marks a run that ended before a terminal status.
const OutcomeAbandoned = "abandoned"

// ErrFinished is returned by Finish when the run was already closed.
var ErrFinished = errors.New("journal: run already finished")

// Writer is the part of the store the recorder needs.
type Writer interface {
	BeginRun(mode string, seed int64, tick time.Duration) (storage.Run, error)
	RecordInput(runID string, tick uint64, direction string) error
	FinishRun(runID, outcome string, ticks uint64, digest string) error
}

// Recorder journals one session. Its listener may run on any goroutine.
type Recorder struct {
	store  Writer
	logger *log.Logger
	run    storage.Run

	mu       sync.Mutex
	inputs   int
	failures int
	finished bool
}

// Begin opens a run for a session built from cfg.
func Begin(store Writer, cfg sim.Config, logger *log.Logger) (*Recorder, error) {
	mode, err := sim.ParseMode(string(cfg.Mode))
	if err != nil {
		return nil, err
	}
	tick := cfg.TickInterval
	if tick == 0 {
		tick = sim.DefaultTickInterval
	}
	if logger == nil {
		logger = log.Default()
	}

	run, err := store.BeginRun(string(mode), cfg.Seed, tick)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	logger.Debug("journal run started", "run", run.ID, "mode", mode, "seed", cfg.Seed)
	return &Recorder{store: store, logger: logger, run: run}, nil
}

// Attach begins a run for s and subscribes the recorder to it.
func Attach(store Writer, s *sim.Session, logger *log.Logger) (*Recorder, error) {
	r, err := Begin(store, s.Config(), logger)
	if err != nil {
		return nil, err
	}
	s.Subscribe(r.Listener())
	return r, nil
}

// ID returns the run ID.
func (r *Recorder) ID() string {
	return r.run.ID
}

// Run returns the run as it was opened.
func (r *Recorder) Run() storage.Run {
	return r.run
}

// Inputs returns how many direction requests were journaled.
func (r *Recorder) Inputs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inputs
}

// Listener journals every accepted direction request. Storage failures are
// logged and counted; they never interrupt the game.
func (r *Recorder) Listener() sim.Listener {
	return func(_ sim.Snapshot, events []sim.Event) {
		for _, e := range events {
			if e.Kind != sim.EventStarted && e.Kind != sim.EventTurned {
				continue
			}
			r.record(e)
		}
	}
}

func (r *Recorder) record(e sim.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return
	}
	if err := r.store.RecordInput(r.run.ID, e.Tick, e.Direction.String()); err != nil {
		r.failures++
		r.logger.Warn("journal input dropped", "run", r.run.ID, "tick", e.Tick, "err", err)
		return
	}
	r.inputs++
}

// Finish closes the run with the final state. Non-terminal states are
// stored as abandoned.
func (r *Recorder) Finish(final sim.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return ErrFinished
	}
	r.finished = true

	outcome := OutcomeFor(final.Status)
	digest := final.Digest()
	if err := r.store.FinishRun(r.run.ID, outcome, final.Ticks, digest); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	if r.failures > 0 {
		r.logger.Warn("journal run incomplete", "run", r.run.ID, "dropped", r.failures)
	}
	r.logger.Info("journal run finished",
		"run", r.run.ID,
		"outcome", outcome,
		"ticks", final.Ticks,
		"score", final.Score,
		"inputs", r.inputs,
	)
	return nil
}

// OutcomeFor maps a session status to the stored outcome.
func OutcomeFor(st sim.Status) string {
	if st.Terminal() {
		return string(st)
	}
	return OutcomeAbandoned
}
