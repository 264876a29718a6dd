// Package clock holds the simulation's notion of "now". Time never
// advances on its own: the external driver feeds elapsed real time in
// and the clock scales it by the speed multiplier.
package clock

import (
	"errors"
	"time"
)

// Speed is the virtual-to-real time multiplier.
type Speed int

const (
	SpeedNormal  Speed = 1
	SpeedFast    Speed = 5
	SpeedFastest Speed = 20
)

var ErrInvalidSpeed = errors.New("speed must be 1, 5 or 20")

func (s Speed) Valid() bool {
	return s == SpeedNormal || s == SpeedFast || s == SpeedFastest
}

type Clock struct {
	now   time.Time
	speed Speed
}

func New(start time.Time) *Clock {
	return &Clock{now: start, speed: SpeedNormal}
}

func (c *Clock) Now() time.Time {
	return c.now
}

func (c *Clock) Speed() Speed {
	return c.speed
}

// SetSpeed replaces the multiplier. It takes effect on the next
// Advance; time already elapsed is never recomputed.
func (c *Clock) SetSpeed(s Speed) error {
	if !s.Valid() {
		return ErrInvalidSpeed
	}

	c.speed = s

	return nil
}

// Advance moves the clock by elapsed real time scaled by the current
// multiplier and returns the new virtual now.
func (c *Clock) Advance(elapsed time.Duration) time.Time {
	c.now = c.now.Add(elapsed * time.Duration(c.speed))
	return c.now
}

// Reset rewinds to a fresh start instant at normal speed.
func (c *Clock) Reset(start time.Time) {
	c.now = start
	c.speed = SpeedNormal
}
