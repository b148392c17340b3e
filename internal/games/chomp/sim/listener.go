package sim

import "github.com/charmbracelet/log"

// LogListener logs every event through logger. Snapshots without events are
// logged at debug level only.
func LogListener(logger *log.Logger) Listener {
	return func(snap Snapshot, events []Event) {
		if len(events) == 0 {
			logger.Debug("tick", "tick", snap.Tick, "status", snap.Status, "score", snap.Score)
			return
		}
		for _, e := range events {
			kv := []any{"kind", e.Kind, "tick", e.Tick, "pos", e.Pos, "score", e.Score}
			if e.AdversaryID >= 0 {
				kv = append(kv, "adversary", e.AdversaryID)
			}
			switch e.Kind {
			case EventGameOver, EventVictory, EventGateReleased, EventStarted:
				logger.Info("event", kv...)
			default:
				logger.Debug("event", kv...)
			}
		}
	}
}
