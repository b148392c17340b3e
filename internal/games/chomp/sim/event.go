package sim

import "github.com/vovakirdan/tui-chomp/internal/core"

// EventKind names a discrete engine event.
type EventKind string

const (
	EventStarted           EventKind = "started"
	EventTurned            EventKind = "turned"
	EventDotEaten          EventKind = "dotEaten"
	EventBonusEaten        EventKind = "bonusEaten"
	EventPowerUpExpired    EventKind = "powerUpExpired"
	EventGateReleased      EventKind = "gateReleased"
	EventAdversaryCaptured EventKind = "adversaryCaptured"
	EventGameOver          EventKind = "gameOver"
	EventVictory           EventKind = "victory"
)

// Event is emitted by Tick and by direction requests.
// AdversaryID is -1 unless the event involves an adversary. Direction is
// set on started and turned events only.
type Event struct {
	Kind        EventKind
	Tick        uint64
	Pos         core.Point
	Score       int
	AdversaryID int
	Direction   Direction
}

// Has reports whether any event of the given kind is present.
func Has(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
