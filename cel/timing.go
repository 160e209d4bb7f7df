package cel

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// IterationCount is a CSS animation-iteration-count value: either a
// positive number of cycles or Infinite. The zero value is invalid so that
// an unset count can be detected and defaulted by callers.
type IterationCount int

// Infinite makes the animation repeat forever.
const Infinite IterationCount = -1

// IsInfinite reports whether the count is the infinite symbol.
func (c IterationCount) IsInfinite() bool {
	return c == Infinite
}

// String returns the CSS representation of the count.
func (c IterationCount) String() string {
	if c.IsInfinite() {
		return "infinite"
	}
	return strconv.Itoa(int(c))
}

// MarshalYAML implements yaml.Marshaler.
func (c IterationCount) MarshalYAML() (any, error) {
	if c.IsInfinite() {
		return "infinite", nil
	}
	return int(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting either a positive
// integer or the string "infinite".
func (c *IterationCount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: iteration count must be a scalar", ErrInvalidTiming)
	}
	raw := value.Value
	if strings.EqualFold(strings.TrimSpace(raw), "infinite") {
		*c = Infinite
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fmt.Errorf("%w: iteration count must be a positive integer or \"infinite\", have %q", ErrInvalidTiming, raw)
	}
	*c = IterationCount(n)
	return nil
}

// Timing holds the shared animation parameters applied to every cel.
type Timing struct {
	// FrameRate is the duration of a single frame in seconds.
	FrameRate float64
	// Alternate makes the sequence play backward on every other pass.
	Alternate bool
	// Iterations is the number of caller-perceived animation cycles.
	Iterations IterationCount
}

// DefaultTiming returns the standard timing: 0.25s per frame, forward only,
// repeating forever.
func DefaultTiming() Timing {
	return Timing{FrameRate: 0.25, Alternate: false, Iterations: Infinite}
}

// Validate checks the timing parameters; the result wraps ErrInvalidTiming.
func (t Timing) Validate() error {
	var err error
	if t.FrameRate <= 0 {
		err = multierr.Append(err, fmt.Errorf("frame rate must be positive, have %v", t.FrameRate))
	}
	if !t.Iterations.IsInfinite() && t.Iterations <= 0 {
		err = multierr.Append(err, fmt.Errorf("iteration count must be a positive integer or \"infinite\", have %d", t.Iterations))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTiming, err)
	}
	return nil
}

// Duration returns the length of one animation pass in seconds.
func (t Timing) Duration(totalFrames int) float64 {
	return float64(totalFrames) * t.FrameRate
}

// CSSIterations returns the iteration count to emit. The CSS engine counts
// forward and backward passes separately, so with alternation on a finite
// caller-perceived count must double to keep one count meaning one full
// back-and-forth cycle. Infinite is never doubled.
func (t Timing) CSSIterations() IterationCount {
	if t.Alternate && !t.Iterations.IsInfinite() {
		return t.Iterations * 2
	}
	return t.Iterations
}
