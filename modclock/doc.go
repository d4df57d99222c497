// Package modclock tracks a position on a cycle of fixed size and counts how
// often a target position is reached.
//
// Two tracker variants share the Tracker interface:
//
//   - PositionTracker (CountExact) counts a step only when it lands exactly on
//     the target, once per call, however many laps the step covers.
//   - CrossingPositionTracker (CountCrossing) counts every modulus boundary
//     crossed: floor((cur+step)/modulus) per call.
//
// Regress on either variant mirrors the position around zero, advances by
// |step| through the variant's own Advance, and mirrors back. For the exact
// variant this means a backward landing is detected on the mirrored position,
// which only coincides with the target when target is 0 (or cur mirrors onto
// itself). The behavior is kept as is; see Example_regressQuirk.
//
// Clock drives a tracker with a list of signed moves and is configured with
// functional options:
//
//	clock, err := modclock.FromParameters(50, 100,
//		modclock.WithCountMode(modclock.CountCrossing),
//		modclock.WithTarget(0),
//	)
//
// Errors:
//
//   - ErrInvalidArgument: modulus <= 0, start or target outside [0, modulus),
//     or an unknown CountMode.
package modclock
