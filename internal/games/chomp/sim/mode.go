package sim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for anything but simple or normal.
var ErrUnknownMode = errors.New("sim: unknown mode")

// Mode selects the adversary population. It is fixed for a session.
type Mode string

const (
	ModeSimple Mode = "simple"
	ModeNormal Mode = "normal"
)

// Modes lists the recognized modes in menu order.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeSimple}
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeSimple, ModeNormal:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// AdversaryCount is the number of adversaries spawned in this mode.
func (m Mode) AdversaryCount() int {
	if m == ModeNormal {
		return 4
	}
	return 0
}
