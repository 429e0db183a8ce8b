// Package clock provides the single monotonic T-state counter that every
// other subsystem anchors its timestamps to. Nothing in this emulator keeps
// an independent time base; tape, TZX, beeper and border all read absolute
// values from this clock.
package clock

// TState is an absolute T-state count, anchored at emulator start. It never
// wraps in practice (64 bits covers ~160 years of continuous 3.5MHz running).
type TState uint64

// Clock is a monotonic T-state counter. The zero value is ready to use,
// starting at T-state 0.
type Clock struct {
	now TState
}

// New returns a Clock anchored at T-state 0.
func New() *Clock {
	return &Clock{}
}

// Now returns the current absolute T-state.
func (c *Clock) Now() TState {
	return c.now
}

// Advance moves the clock forward by delta T-states and returns the new
// absolute time. delta must be >= 0; the scheduler is the only caller and
// always advances by the T-states the CPU core reports executing.
func (c *Clock) Advance(delta uint64) TState {
	c.now += TState(delta)
	return c.now
}

// Set forces the clock to an absolute T-state. Nothing in this repository
// calls it; the scheduler only ever uses Advance.
func (c *Clock) Set(t TState) {
	c.now = t
}
