package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-chomp/internal/games/chomp/sim"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

// ErrDigestMismatch is returned when a finished run replays to a different
// final state.
var ErrDigestMismatch = errors.New("journal: replay digest mismatch")

// Reader is the part of the store replay needs.
type Reader interface {
	Run(idOrPrefix string) (storage.Run, error)
	Inputs(runID string) ([]storage.RunInput, error)
}

// Result describes one replay.
type Result struct {
	Run    storage.Run
	Final  sim.State
	Digest string
	Inputs int
}

// Verified reports whether the replay reproduced a finished run exactly.
func (r Result) Verified() bool {
	return r.Run.Finished() && r.Digest == r.Run.Digest
}

// Outcome is the replayed outcome in journal terms.
func (r Result) Outcome() string {
	return OutcomeFor(r.Final.Status)
}

// Replay rebuilds a journaled run without a terminal. Inputs recorded at
// tick t are applied before tick t+1 runs. For finished runs the final
// digest is compared with the stored one.
func Replay(store Reader, idOrPrefix string) (Result, error) {
	run, err := store.Run(idOrPrefix)
	if err != nil {
		return Result{}, err
	}
	inputs, err := store.Inputs(run.ID)
	if err != nil {
		return Result{}, err
	}

	final, err := replayInputs(run, inputs)
	if err != nil {
		return Result{}, err
	}

	res := Result{Run: run, Final: final, Digest: final.Digest(), Inputs: len(inputs)}
	if run.Finished() && res.Digest != run.Digest {
		return res, fmt.Errorf("%w: run %s stored %s, replayed %s",
			ErrDigestMismatch, run.ID, run.Digest, res.Digest)
	}
	return res, nil
}

func replayInputs(run storage.Run, inputs []storage.RunInput) (sim.State, error) {
	mode, err := sim.ParseMode(run.Mode)
	if err != nil {
		return sim.State{}, fmt.Errorf("journal: run %s: %w", run.ID, err)
	}
	session, err := sim.NewSession(sim.Config{
		Mode:         mode,
		Seed:         run.Seed,
		TickInterval: run.TickInterval,
	})
	if err != nil {
		return sim.State{}, fmt.Errorf("journal: run %s: %w", run.ID, err)
	}

	dirs := make([]sim.Direction, len(inputs))
	for i, in := range inputs {
		d, err := sim.ParseDirection(in.Direction)
		if err != nil {
			return sim.State{}, fmt.Errorf("journal: run %s input %d: %w", run.ID, in.Seq, err)
		}
		dirs[i] = d
	}

	next := 0
	apply := func(tick uint64) {
		for next < len(inputs) && inputs[next].Tick <= tick {
			session.RequestDirection(dirs[next])
			next++
		}
	}

	limit := run.Ticks
	if !run.Finished() && len(inputs) > 0 {
		limit = max(limit, inputs[len(inputs)-1].Tick)
	}

	for {
		st := session.State()
		apply(st.Ticks)
		st = session.State()
		if st.Status != sim.StatusRunning || st.Ticks >= limit {
			break
		}
		session.Advance()
	}
	return session.State(), nil
}

// Duration is the simulated play time of a replay.
func (r Result) Duration() time.Duration {
	return r.Final.Clock
}
