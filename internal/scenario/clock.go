package scenario

import (
	"time"
)

// DefaultStartTime is the simulated morning every scenario begins on
var DefaultStartTime = time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

// SimulatedClock allows time manipulation for scripted sessions. It is the
// game's only time source, so timestamps in outcomes are reproducible.
type SimulatedClock struct {
	current time.Time
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{
		current: start,
	}
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	return c.current
}

// Since returns the duration since the given time
func (c *SimulatedClock) Since(t time.Time) time.Duration {
	return c.current.Sub(t)
}

// Advance moves the simulated time forward by the given duration
func (c *SimulatedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// AdvanceHours moves the simulated time forward by the given number of hours
func (c *SimulatedClock) AdvanceHours(hours float64) {
	c.current = c.current.Add(time.Duration(hours * float64(time.Hour)))
}

// NextMorning jumps to DefaultStartTime's hour on the following calendar day
func (c *SimulatedClock) NextMorning() {
	y, m, d := c.current.AddDate(0, 0, 1).Date()
	c.current = time.Date(y, m, d, DefaultStartTime.Hour(), 0, 0, 0, c.current.Location())
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.current = t
}
