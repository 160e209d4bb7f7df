// Package cel generates CSS keyframe based cel animations: an ordered list
// of per-child frame counts is partitioned into visibility windows along a
// shared timeline, and every child gets a uniquely named keyframe rule that
// shows it for its window only. With a 1-step timing function on the whole
// animation this emulates traditional frame-by-frame animation with hard
// cuts between cels.
package cel

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Sentinel errors for input validation. All validation completes before any
// output is produced - the generator is all-or-nothing.
var (
	ErrInvalidSpec   = errors.New("invalid cel spec")
	ErrInvalidTiming = errors.New("invalid timing")
)

// Spec is an ordered list of cel durations, each the number of frames the
// corresponding positional child stays visible. Order is significant: entry
// i maps to the i-th child (1-based) of the animated container.
type Spec []int

// Validate checks that the spec is non-empty and every duration is a
// positive frame count. All offending entries are reported, not just the
// first; the result wraps ErrInvalidSpec.
func (s Spec) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no cels", ErrInvalidSpec)
	}
	var err error
	for i, frames := range s {
		if frames <= 0 {
			err = multierr.Append(err, fmt.Errorf("cel %d: duration must be a positive frame count, have %d", i+1, frames))
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	return nil
}

// TotalFrames returns the length of the full animation cycle in frames.
func (s Spec) TotalFrames() int {
	var total int
	for _, frames := range s {
		total += frames
	}
	return total
}
