// Package timer provides the shared countdown and the tick scheduler that
// drive phase deadlines and delayed actions on a single logical timeline.
package timer

// Countdown is the shared phase deadline, measured in whole time units.
// PEEK and SELECT share one continuous budget; QUIZ resets it.
type Countdown struct {
	remaining int
	active    bool
}

// NewCountdown returns an inactive countdown
func NewCountdown() *Countdown {
	return &Countdown{}
}

// Reset starts the countdown with the given number of units
func (c *Countdown) Reset(units int) {
	c.remaining = units
	c.active = units > 0
}

// Stop deactivates the countdown without clearing the remaining value
func (c *Countdown) Stop() {
	c.active = false
}

// Tick decrements an active countdown by one unit and reports whether it
// expired on this tick. An inactive or already-expired countdown never
// reports expiry again.
func (c *Countdown) Tick() bool {
	if !c.active {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.active = false
		return true
	}
	return false
}

// Remaining returns the units left on the countdown
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Active reports whether the countdown is running
func (c *Countdown) Active() bool {
	return c.active
}
