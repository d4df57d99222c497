package modclock

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a modulus, start, target or mode that cannot
// describe a valid tracker.
var ErrInvalidArgument = errors.New("modclock: invalid argument")

// CountMode selects which Tracker variant a Clock uses.
type CountMode int

const (
	// CountExact counts landings exactly on the target.
	CountExact CountMode = iota
	// CountCrossing counts modulus boundaries crossed.
	CountCrossing
)

// String returns "exact" or "crossing".
func (m CountMode) String() string {
	switch m {
	case CountExact:
		return "exact"
	case CountCrossing:
		return "crossing"
	default:
		return fmt.Sprintf("CountMode(%d)", int(m))
	}
}

// ParseCountMode maps "exact" and "crossing" to their CountMode.
func ParseCountMode(s string) (CountMode, error) {
	switch s {
	case "exact":
		return CountExact, nil
	case "crossing":
		return CountCrossing, nil
	default:
		return 0, fmt.Errorf("%w: unknown count mode %q", ErrInvalidArgument, s)
	}
}

// Tracker is a position on a cycle of Modulus() slots with a hit counter.
type Tracker interface {
	// Advance moves forward by step and updates the counter.
	Advance(step int)
	// Regress moves backward by |step| via the mirror-advance-mirror rule.
	Regress(step int)
	// Cur returns the current position in [0, Modulus()).
	Cur() int
	// Counter returns the number of hits recorded so far.
	Counter() int
	// Modulus returns the cycle size.
	Modulus() int
	// Target returns the position being counted.
	Target() int
}

// ClockOptions configures FromParameters.
type ClockOptions struct {
	// Mode picks the tracker variant.
	Mode CountMode
	// Target is the position to count, in [0, modulus).
	Target int
}

// Option configures ClockOptions.
type Option func(*ClockOptions)

// DefaultOptions returns Mode=CountExact, Target=0.
func DefaultOptions() ClockOptions {
	return ClockOptions{
		Mode:   CountExact,
		Target: 0,
	}
}

// WithCountMode sets the tracker variant.
func WithCountMode(m CountMode) Option {
	return func(o *ClockOptions) {
		o.Mode = m
	}
}

// WithTarget sets the counted position.
func WithTarget(target int) Option {
	return func(o *ClockOptions) {
		o.Target = target
	}
}
