package sim

import "sync"

// Listener receives the snapshot and events after every state change.
// Listeners run synchronously under the session lock and must not call
// back into the session.
type Listener func(snap Snapshot, events []Event)

// Session is the single writer for one game. Direction requests, ticks and
// resets are serialized behind one mutex.
type Session struct {
	mu        sync.Mutex
	cfg       Config
	state     State
	listeners []Listener
}

// NewSession validates cfg and builds the initial board.
func NewSession(cfg Config) (*Session, error) {
	st, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Session{cfg: cfg, state: st}, nil
}

// Subscribe registers l for all future updates.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// RequestDirection updates the player's facing. It never moves anything.
func (s *Session) RequestDirection(d Direction) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.state.applyDirection(d)
	if len(events) > 0 {
		s.notify(events)
	}
	return events
}

// Advance runs one tick.
func (s *Session) Advance() (Snapshot, []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevTick := s.state.Ticks
	var events []Event
	s.state, events = Tick(s.state, Input{})
	snap := s.state.Snapshot()
	if s.state.Ticks != prevTick || len(events) > 0 {
		s.notifySnapshot(snap, events)
	}
	return snap, events
}

// Reset discards the whole session state and rebuilds the board from the
// session config. The seed is reused, so a reset replays the same game.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	// cfg was validated by NewSession
	s.state, _ = New(s.cfg)
	snap := s.state.Snapshot()
	s.notifySnapshot(snap, nil)
	return snap
}

// Snapshot returns the current view.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// State returns a deep copy of the aggregate.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Config returns the config the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) notify(events []Event) {
	if len(s.listeners) == 0 {
		return
	}
	s.notifySnapshot(s.state.Snapshot(), events)
}

func (s *Session) notifySnapshot(snap Snapshot, events []Event) {
	for _, l := range s.listeners {
		l(snap, events)
	}
}
