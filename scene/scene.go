// Package scene defines the YAML scene file format: a sheet of named cel
// animations, each with a target selector, a cel duration list and timing.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"celc/cel"
)

// ErrInvalidScene is wrapped by every scene validation failure.
var ErrInvalidScene = errors.New("invalid scene")

// Animation is a single cel animation in a scene.
type Animation struct {
	// Name identifies the animation; it seeds keyframe name prefixes and,
	// when Target is empty, the target class selector.
	Name string `yaml:"name"`
	// Target is the CSS selector of the animated container. Defaults to
	// "." + slugged Name.
	Target string `yaml:"target,omitempty"`
	// Cels lists per-child visibility durations in frames, in child order.
	Cels []int `yaml:"cels,flow"`
	// FrameRate is seconds per frame; nil means the 0.25 default. A
	// pointer so an explicit zero in the file is rejected instead of
	// silently defaulted.
	FrameRate *float64 `yaml:"frame_rate,omitempty"`
	// Alternate plays the sequence backward on every other pass.
	Alternate bool `yaml:"alternate,omitempty"`
	// Iterations is a positive cycle count or "infinite" (the default).
	Iterations cel.IterationCount `yaml:"iterations,omitempty"`
}

// Timing returns the animation's cel timing parameters.
func (a Animation) Timing() cel.Timing {
	t := cel.Timing{
		Alternate:  a.Alternate,
		Iterations: a.Iterations,
	}
	if a.FrameRate != nil {
		t.FrameRate = *a.FrameRate
	}
	return t
}

// Scene is a parsed scene file.
type Scene struct {
	Version    int         `yaml:"version"`
	Title      string      `yaml:"title,omitempty"`
	Animations []Animation `yaml:"animations"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read scene file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene file '%s': %w", path, err)
	}
	return s, nil
}

// Parse decodes scene YAML, applies defaults and validates. Unknown fields
// are rejected so typos in scene files fail loudly instead of being
// silently dropped.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	s.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// applyDefaults fills unset per-animation fields: frame rate 0.25, infinite
// iterations, target selector derived from the name. An IterationCount is
// never decoded as 0 (the unmarshaler rejects it), so 0 always means unset.
func (s *Scene) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	def := cel.DefaultTiming()
	for i := range s.Animations {
		a := &s.Animations[i]
		if a.FrameRate == nil {
			rate := def.FrameRate
			a.FrameRate = &rate
		}
		if a.Iterations == 0 {
			a.Iterations = def.Iterations
		}
		if a.Target == "" && a.Name != "" {
			a.Target = "." + slug.Make(a.Name)
		}
	}
}

func (s *Scene) validate() error {
	var err error
	if s.Version != 1 {
		err = multierr.Append(err, fmt.Errorf("unsupported version %d", s.Version))
	}
	if len(s.Animations) == 0 {
		err = multierr.Append(err, errors.New("no animations defined"))
	}

	seen := make(map[string]struct{}, len(s.Animations))
	for i, a := range s.Animations {
		if a.Name == "" {
			err = multierr.Append(err, fmt.Errorf("animation %d: name is required", i+1))
			continue
		}
		if _, dup := seen[a.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("animation %d: duplicate name '%s'", i+1, a.Name))
		}
		seen[a.Name] = struct{}{}

		if verr := cel.Spec(a.Cels).Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("animation '%s': %w", a.Name, verr))
		}
		if verr := a.Timing().Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("animation '%s': %w", a.Name, verr))
		}
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return nil
}
