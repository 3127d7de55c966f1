package debris

// TimerSink receives the remaining seconds after every tick
type TimerSink interface {
	SetTimeRemaining(int)
}

// Countdown is the one-second-resolution mission timer
// The tick that reaches zero fires onExpire exactly once; later ticks are no-ops
// Time is counted in ticks, not read from the clock: after a loop stall the scheduler
// replays at most a bounded number of missed ticks, so the countdown can trail wall-clock time
type Countdown struct {
	remaining int
	expired   bool
	sink      TimerSink
	onExpire  func()
}

// NewCountdown creates a countdown starting at start seconds; sink and onExpire may be nil
func NewCountdown(start int, sink TimerSink, onExpire func()) *Countdown {
	return &Countdown{
		remaining: start,
		sink:      sink,
		onExpire:  onExpire,
	}
}

// Tick consumes one second
func (c *Countdown) Tick() {
	if c.expired {
		return
	}

	if c.remaining > 0 {
		c.remaining--
		if c.sink != nil {
			c.sink.SetTimeRemaining(c.remaining)
		}
	}

	if c.remaining <= 0 {
		c.expired = true
		if c.onExpire != nil {
			c.onExpire()
		}
	}
}

func (c *Countdown) Remaining() int { return c.remaining }
func (c *Countdown) Expired() bool  { return c.expired }
