package sim

import "time"

// PowerUp tracks the vulnerability window. The deadline lives on the engine
// clock, so re-arming just overwrites it.
type PowerUp struct {
	Active    bool
	ExpiresAt time.Duration
}

// Arm starts or restarts the window at now.
func (p *PowerUp) Arm(now time.Duration) {
	p.Active = true
	p.ExpiresAt = now + PowerUpDuration
}

// Remaining is the time left in the window, zero when inactive.
func (p PowerUp) Remaining(now time.Duration) time.Duration {
	if !p.Active || now >= p.ExpiresAt {
		return 0
	}
	return p.ExpiresAt - now
}

// expire clears the power-up once now reaches the deadline.
func (p *PowerUp) expire(now time.Duration) bool {
	if !p.Active || now < p.ExpiresAt {
		return false
	}
	*p = PowerUp{}
	return true
}
