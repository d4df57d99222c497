package modclock

// Clock applies signed moves to a Tracker.
type Clock struct {
	tracker Tracker
}

// New wraps an existing tracker.
func New(t Tracker) *Clock {
	return &Clock{tracker: t}
}

// FromParameters builds a Clock at start on a cycle of modulus slots.
// Defaults come from DefaultOptions; see WithCountMode and WithTarget.
func FromParameters(start, modulus int, opts ...Option) (*Clock, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	t, err := NewTracker(o.Mode, start, modulus, o.Target)
	if err != nil {
		return nil, err
	}

	return New(t), nil
}

// MakeMoves advances on non-negative moves and regresses on negative ones.
func (c *Clock) MakeMoves(moves ...int) {
	for _, m := range moves {
		if m >= 0 {
			c.tracker.Advance(m)
		} else {
			c.tracker.Regress(-m)
		}
	}
}

// Counter returns the tracker's counter.
func (c *Clock) Counter() int {
	return c.tracker.Counter()
}

// Cur returns the tracker's position.
func (c *Clock) Cur() int {
	return c.tracker.Cur()
}

// Tracker returns the underlying tracker.
func (c *Clock) Tracker() Tracker {
	return c.tracker
}

// Reset swaps in a new tracker, discarding the old position and counter.
func (c *Clock) Reset(t Tracker) {
	c.tracker = t
}
