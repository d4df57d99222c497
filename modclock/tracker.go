package modclock

import "fmt"

// position is the state shared by both tracker variants.
type position struct {
	cur     int
	modulus int
	target  int
	counter int
}

func newPosition(start, modulus, target int) (position, error) {
	if modulus <= 0 {
		return position{}, fmt.Errorf("%w: modulus must be positive, got %d", ErrInvalidArgument, modulus)
	}
	if target < 0 || target >= modulus {
		return position{}, fmt.Errorf("%w: target %d not in [0, %d)", ErrInvalidArgument, target, modulus)
	}
	if start < 0 || start >= modulus {
		return position{}, fmt.Errorf("%w: start %d not in [0, %d)", ErrInvalidArgument, start, modulus)
	}

	return position{cur: start, modulus: modulus, target: target}, nil
}

func (p *position) Cur() int     { return p.cur }
func (p *position) Counter() int { return p.counter }
func (p *position) Modulus() int { return p.modulus }
func (p *position) Target() int  { return p.target }

// mirror reflects cur around zero.
func (p *position) mirror() {
	if p.cur != 0 {
		p.cur = p.modulus - p.cur
	}
}

// regress runs the mirror-advance-mirror rule through t's own Advance.
func regress(t Tracker, p *position, step int) {
	p.mirror()
	t.Advance(abs(step))
	p.mirror()
}

// PositionTracker counts landings exactly on the target.
type PositionTracker struct {
	position
}

// NewPositionTracker returns an exact-landing tracker at start.
func NewPositionTracker(start, modulus, target int) (*PositionTracker, error) {
	p, err := newPosition(start, modulus, target)
	if err != nil {
		return nil, err
	}

	return &PositionTracker{position: p}, nil
}

// Advance moves to (cur+step) mod modulus and counts one hit if the new
// position is the target.
func (t *PositionTracker) Advance(step int) {
	t.cur = floorMod(t.cur+step, t.modulus)
	if t.cur == t.target {
		t.counter++
	}
}

// Regress moves backward by |step|.
func (t *PositionTracker) Regress(step int) {
	regress(t, &t.position, step)
}

// CrossingPositionTracker counts every modulus boundary crossed.
type CrossingPositionTracker struct {
	position
}

// NewCrossingPositionTracker returns a boundary-crossing tracker at start.
func NewCrossingPositionTracker(start, modulus, target int) (*CrossingPositionTracker, error) {
	p, err := newPosition(start, modulus, target)
	if err != nil {
		return nil, err
	}

	return &CrossingPositionTracker{position: p}, nil
}

// Advance adds floor((cur+step)/modulus) to the counter and moves to
// (cur+step) mod modulus. A negative step can lower the counter.
func (t *CrossingPositionTracker) Advance(step int) {
	total := t.cur + step
	t.counter += floorDiv(total, t.modulus)
	t.cur = floorMod(total, t.modulus)
}

// Regress moves backward by |step|.
func (t *CrossingPositionTracker) Regress(step int) {
	regress(t, &t.position, step)
}

// NewTracker builds the tracker variant selected by mode.
func NewTracker(mode CountMode, start, modulus, target int) (Tracker, error) {
	var wrap func(position) Tracker
	switch mode {
	case CountExact:
		wrap = func(p position) Tracker { return &PositionTracker{position: p} }
	case CountCrossing:
		wrap = func(p position) Tracker { return &CrossingPositionTracker{position: p} }
	default:
		return nil, fmt.Errorf("%w: unknown count mode %s", ErrInvalidArgument, mode)
	}

	p, err := newPosition(start, modulus, target)
	if err != nil {
		return nil, err
	}

	return wrap(p), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}

	return m
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
