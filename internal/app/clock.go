// internal/app/clock.go
package app

// Clock counts whole seconds down to zero.
type Clock struct {
	duration  int
	remaining int
}

func NewClock(seconds int) *Clock {
	return &Clock{duration: seconds, remaining: seconds}
}

// Tick takes one second off the clock. ended is true only on the tick that
// reaches zero; ticks after that change nothing.
func (c *Clock) Tick() (remaining int, ended bool) {
	if c.remaining <= 0 {
		return 0, false
	}
	c.remaining--
	return c.remaining, c.remaining == 0
}

func (c *Clock) Remaining() int {
	return c.remaining
}

func (c *Clock) Duration() int {
	return c.duration
}

// Expired reports whether the countdown has reached zero.
func (c *Clock) Expired() bool {
	return c.remaining <= 0
}

// Reset winds the clock back to its full duration.
func (c *Clock) Reset() {
	c.remaining = c.duration
}
