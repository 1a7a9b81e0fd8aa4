package movement

// finishEps absorbs float error from summing fixed timesteps.
const finishEps = 1e-9

// Countdown is a simulation-time timer. The zero value is finished.
type Countdown struct {
	Duration  float64
	Remaining float64
}

// Start (re)arms the countdown for d seconds.
func (c *Countdown) Start(d float64) {
	c.Duration = d
	c.Remaining = d
}

// Tick advances the countdown and reports whether it finished on this tick.
func (c *Countdown) Tick(dt float64) bool {
	if c.Finished() {
		return false
	}
	c.Remaining -= dt
	if c.Remaining <= finishEps {
		c.Remaining = 0
		return true
	}
	return false
}

func (c Countdown) Finished() bool {
	return c.Remaining <= finishEps
}

// PercentLeft is the remaining fraction in [0, 1]. A finished or unset
// countdown has nothing left.
func (c Countdown) PercentLeft() float64 {
	if c.Duration <= 0 || c.Finished() {
		return 0
	}
	return c.Remaining / c.Duration
}
