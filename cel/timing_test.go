package cel_test

import (
	"errors"
	"math"
	"testing"

	yaml "gopkg.in/yaml.v3"

	"celc/cel"
)

func TestTiming_Duration(t *testing.T) {
	cases := []struct {
		frames    int
		frameRate float64
		want      float64
	}{
		{3, 0.25, 0.75},
		{6, 0.1, 0.6},
		{10, 0.25, 2.5},
		{1, 1, 1},
	}

	for _, tc := range cases {
		timing := cel.DefaultTiming()
		timing.FrameRate = tc.frameRate
		got := timing.Duration(tc.frames)
		// exact product of the inputs, not an approximation
		if want := float64(tc.frames) * tc.frameRate; got != want {
			t.Errorf("%d frames at %v s/frame: got %v, want %v", tc.frames, tc.frameRate, got, want)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%d frames at %v s/frame: got %v, want about %v", tc.frames, tc.frameRate, got, tc.want)
		}
	}
}

func TestTiming_CSSIterations(t *testing.T) {
	cases := []struct {
		name       string
		alternate  bool
		iterations cel.IterationCount
		want       cel.IterationCount
	}{
		{"finite forward", false, 2, 2},
		{"finite alternating doubles", true, 2, 4},
		{"infinite forward", false, cel.Infinite, cel.Infinite},
		{"infinite alternating stays infinite", true, cel.Infinite, cel.Infinite},
		{"single alternating pass", true, 1, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			timing := cel.Timing{FrameRate: 0.25, Alternate: tc.alternate, Iterations: tc.iterations}
			if got := timing.CSSIterations(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTiming_Validate(t *testing.T) {
	cases := []struct {
		name   string
		timing cel.Timing
		valid  bool
	}{
		{"defaults", cel.DefaultTiming(), true},
		{"finite iterations", cel.Timing{FrameRate: 0.1, Iterations: 5}, true},
		{"zero frame rate", cel.Timing{FrameRate: 0, Iterations: cel.Infinite}, false},
		{"negative frame rate", cel.Timing{FrameRate: -0.5, Iterations: cel.Infinite}, false},
		{"zero iterations", cel.Timing{FrameRate: 0.25, Iterations: 0}, false},
		{"negative iterations", cel.Timing{FrameRate: 0.25, Iterations: -3}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.timing.Validate()
			if tc.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.valid && !errors.Is(err, cel.ErrInvalidTiming) {
				t.Errorf("got error %v, want ErrInvalidTiming", err)
			}
		})
	}
}

func TestIterationCount_String(t *testing.T) {
	if got := cel.Infinite.String(); got != "infinite" {
		t.Errorf("infinite: got %q, want %q", got, "infinite")
	}
	if got := cel.IterationCount(4).String(); got != "4" {
		t.Errorf("finite: got %q, want %q", got, "4")
	}
}

func TestIterationCount_YAML(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  cel.IterationCount
		fails bool
	}{
		{"integer", "3", 3, false},
		{"infinite", "infinite", cel.Infinite, false},
		{"infinite uppercase", "INFINITE", cel.Infinite, false},
		{"zero", "0", 0, true},
		{"negative", "-2", 0, true},
		{"garbage", "sometimes", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c cel.IterationCount
			err := yaml.Unmarshal([]byte(tc.input), &c)
			if tc.fails {
				if err == nil {
					t.Fatalf("expected error, decoded %v", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c != tc.want {
				t.Errorf("got %v, want %v", c, tc.want)
			}
		})
	}

	// round trip
	data, err := yaml.Marshal(cel.Infinite)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back cel.IterationCount
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != cel.Infinite {
		t.Errorf("round trip: got %v, want infinite", back)
	}
}
