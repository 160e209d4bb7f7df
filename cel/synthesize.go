package cel

// KeyframeRule describes one cel's keyframe sequence: the cel becomes fully
// opaque at AppearAt and fully transparent at DisappearAt (percentages of
// the animation duration). The hard cut between cels comes from the 1-step
// timing function applied to the whole animation, not from the stops.
type KeyframeRule struct {
	ID          string
	AppearAt    float64
	DisappearAt float64
}

// Binding associates a keyframe rule with a positional child. Index is
// 1-based, matching CSS :nth-child numbering.
type Binding struct {
	ID    string
	Index int
}

// Synthesize produces one keyframe rule and one binding per window, in
// window order, drawing a fresh identifier from names for each. The appear
// stop is always emitted explicitly, including at offset 0 - the shared
// base state for all cels is opacity 0 and only the active window's rule
// overrides it.
func Synthesize(windows []Window, names NameSource) ([]KeyframeRule, []Binding) {
	rules := make([]KeyframeRule, 0, len(windows))
	bindings := make([]Binding, 0, len(windows))

	for i, w := range windows {
		id := names.Next()
		rules = append(rules, KeyframeRule{
			ID:          id,
			AppearAt:    w.Start,
			DisappearAt: w.End,
		})
		bindings = append(bindings, Binding{ID: id, Index: i + 1})
	}
	return rules, bindings
}
