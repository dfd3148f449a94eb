package anim

// Clock counts host ticks for hosts whose update and draw callbacks run at
// different rates. Step advances the driver once per tick; Frame renders the
// current state any number of times without moving the clock, so the reveal
// rate follows the tick rate rather than the display refresh rate.
type Clock struct {
	driver *Driver
	ticks  uint64
}

func NewClock(d *Driver) *Clock {
	return &Clock{driver: d}
}

// Step advances the driver to the current tick and moves the clock on.
func (c *Clock) Step() {
	c.driver.Advance(c.ticks)
	c.ticks++
}

// Frame renders the driver's state as of the last Step.
func (c *Clock) Frame() Frame {
	return c.driver.Render(c.ticks)
}

func (c *Clock) Ticks() uint64 { return c.ticks }

// Reset rewinds the clock and the driver together.
func (c *Clock) Reset() {
	c.ticks = 0
	c.driver.Reset()
}
