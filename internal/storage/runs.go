package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrRunNotFound is returned when no run matches the given ID.
	ErrRunNotFound = errors.New("storage: run not found")

	// ErrAmbiguousRun is returned when an ID prefix matches several runs.
	ErrAmbiguousRun = errors.New("storage: run id prefix is ambiguous")
)

// Run is one journaled game. Outcome is empty until FinishRun.
type Run struct {
	ID           string
	Mode         string
	Seed         int64
	TickInterval time.Duration
	StartedAt    time.Time
	FinishedAt   time.Time
	Outcome      string
	Ticks        uint64
	Digest       string
}

// Finished reports whether FinishRun was called for the run.
func (r Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// RunInput is a direction request applied before tick Tick.
type RunInput struct {
	Seq       int
	Tick      uint64
	Direction string
}

// BeginRun journals a new run and returns it with a fresh ID.
func (s *Store) BeginRun(mode string, seed int64, tick time.Duration) (Run, error) {
	run := Run{
		ID:           uuid.NewString(),
		Mode:         mode,
		Seed:         seed,
		TickInterval: tick,
		StartedAt:    time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, mode, seed, tick_ns, started_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Mode, run.Seed, int64(run.TickInterval), run.StartedAt.Format(timeLayout),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot begin run: %w", err)
	}
	return run, nil
}

// RecordInput appends a direction request to the run.
func (s *Store) RecordInput(runID string, tick uint64, direction string) error {
	_, err := s.db.Exec(
		`INSERT INTO run_inputs (run_id, seq, tick, direction)
		 VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM run_inputs WHERE run_id = ?), ?, ?)`,
		runID, runID, int64(tick), direction,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record input: %w", err)
	}
	return nil
}

// FinishRun stores the final outcome, tick count and state digest.
func (s *Store) FinishRun(runID, outcome string, ticks uint64, digest string) error {
	res, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, outcome = ?, ticks = ?, digest = ? WHERE id = ?`,
		time.Now().UTC().Format(timeLayout), outcome, int64(ticks), digest, runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

// Run looks a run up by its full ID or a unique prefix of it.
func (s *Store) Run(idOrPrefix string) (Run, error) {
	if idOrPrefix == "" {
		return Run{}, ErrRunNotFound
	}

	rows, err := s.db.Query(
		`SELECT id, mode, seed, tick_ns, started_at, finished_at, outcome, ticks, digest
		 FROM runs
		 WHERE id = ? OR substr(id, 1, ?) = ?
		 LIMIT 2`,
		idOrPrefix, len(idOrPrefix), idOrPrefix,
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil {
		return Run{}, err
	}
	switch len(runs) {
	case 0:
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, idOrPrefix)
	case 1:
		return runs[0], nil
	default:
		return Run{}, fmt.Errorf("%w: %s", ErrAmbiguousRun, idOrPrefix)
	}
}

// Inputs returns the run's direction requests in recording order.
func (s *Store) Inputs(runID string) ([]RunInput, error) {
	rows, err := s.db.Query(
		`SELECT seq, tick, direction FROM run_inputs WHERE run_id = ? ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	var inputs []RunInput
	for rows.Next() {
		var in RunInput
		var tick int64
		if err := rows.Scan(&in.Seq, &tick, &in.Direction); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		in.Tick = uint64(tick)
		inputs = append(inputs, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return inputs, nil
}

// RecentRuns returns the newest runs first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, seed, tick_ns, started_at, finished_at, outcome, ticks, digest
		 FROM runs
		 ORDER BY started_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// DeleteRun removes a run and its inputs.
func (s *Store) DeleteRun(runID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM run_inputs WHERE run_id = ?`, runID); err != nil {
		return fmt.Errorf("storage: cannot delete inputs: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM runs WHERE id = ?`, runID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var tickNS, ticks int64
		var startedAt any
		var finishedAt sql.NullString
		if err := rows.Scan(&r.ID, &r.Mode, &r.Seed, &tickNS, &startedAt, &finishedAt, &r.Outcome, &ticks, &r.Digest); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.TickInterval = time.Duration(tickNS)
		r.Ticks = uint64(ticks)
		r.StartedAt = parseTime(startedAt)
		if finishedAt.Valid {
			r.FinishedAt = parseTime(finishedAt.String)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
