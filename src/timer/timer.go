package timer

// Countdown counts simulated ticks. It replaces a wall-clock door timer: the elevator
// stays blocked while the countdown is running.
type Countdown int

// Start sets the number of ticks remaining. Negative values clamp to zero.
func (c *Countdown) Start(ticks int) {
	*c = Countdown(max(ticks, 0))
}

// Step consumes one tick if the countdown is running and reports whether it was.
func (c *Countdown) Step() bool {
	if *c <= 0 {
		return false
	}
	*c--
	return true
}

func (c Countdown) Remaining() int {
	return int(c)
}

func (c Countdown) Running() bool {
	return c > 0
}
