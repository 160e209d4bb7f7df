package cel

import (
	"fmt"

	"go.uber.org/zap"

	"celc/css"
)

// Generator turns cel specs into CSS stylesheets. It is stateless apart
// from the name source and safe for concurrent use when the source is.
type Generator struct {
	names NameSource
	log   *zap.Logger
}

// NewGenerator creates a generator drawing animation names from names.
// A nil names falls back to a UUID source; a nil log disables logging.
func NewGenerator(names NameSource, log *zap.Logger) *Generator {
	if names == nil {
		names = NewUUIDSource("")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{names: names, log: log.Named("cel-generator")}
}

// Generate produces a stylesheet animating the direct children of target
// (a CSS selector) as a cel sequence. Inputs are validated up front;
// on error no output is produced.
func (g *Generator) Generate(target string, cels Spec, timing Timing) (*css.Stylesheet, error) {
	sheet := &css.Stylesheet{}
	if err := g.AppendTo(sheet, target, cels, timing); err != nil {
		return nil, err
	}
	return sheet, nil
}

// AppendTo appends one animation's declarations to an existing stylesheet,
// letting several animations share a sheet. The cascade ordering contract
// holds per animation: the shared children block is emitted before the
// per-child binding rules, which the keyframes blocks follow.
func (g *Generator) AppendTo(sheet *css.Stylesheet, target string, cels Spec, timing Timing) error {
	if target == "" {
		return fmt.Errorf("%w: empty target selector", ErrInvalidSpec)
	}
	if err := timing.Validate(); err != nil {
		return err
	}

	tl, err := Partition(cels)
	if err != nil {
		return err
	}
	rules, bindings := Synthesize(tl.Windows, g.names)

	duration := timing.Duration(tl.TotalFrames)
	g.log.Debug("Generating cel animation",
		zap.String("target", target),
		zap.Int("cels", len(cels)),
		zap.Int("frames", tl.TotalFrames),
		zap.Float64("duration", duration),
		zap.Bool("alternate", timing.Alternate),
		zap.Stringer("iterations", timing.CSSIterations()))

	// Shared layer: every direct child starts hidden and runs the same
	// animation envelope. Specific layer below overrides per child.
	shared := &css.Rule{Selector: target + " > *"}
	shared.Add("opacity", "0")
	shared.Add("animation-duration", css.FormatSeconds(duration))
	shared.Add("animation-timing-function", "steps(1)")
	shared.Add("animation-iteration-count", timing.CSSIterations().String())
	if timing.Alternate {
		shared.Add("animation-direction", "alternate")
	}
	sheet.AddRule(shared)

	for _, b := range bindings {
		rule := &css.Rule{Selector: fmt.Sprintf("%s > *:nth-child(%d)", target, b.Index)}
		rule.Add("animation-name", b.ID)
		sheet.AddRule(rule)
	}

	for _, r := range rules {
		sheet.AddKeyframes(&css.Keyframes{
			Name: r.ID,
			Stops: []css.Stop{
				{At: r.AppearAt, Declarations: []css.Declaration{{Property: "opacity", Value: "1"}}},
				{At: r.DisappearAt, Declarations: []css.Declaration{{Property: "opacity", Value: "0"}}},
			},
		})
	}
	return nil
}
