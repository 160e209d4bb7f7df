package generate

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"

	"celc/css"
	"celc/state"
)

// RunInspect parses a stylesheet and reports its animation structure:
// celc inspect SOURCE.
func RunInspect(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no stylesheet specified")
	}
	path := cmd.Args().Get(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}

	sheet := css.NewParser(env.Log).Parse(data, path)

	// Bindings: rules carrying an animation-name declaration.
	bound := make(map[string][]string)
	for _, rule := range sheet.Rules() {
		if name, ok := rule.Get("animation-name"); ok {
			bound[name] = append(bound[name], rule.Selector)
		}
	}

	fmt.Printf("%s: %d rules, %d keyframes blocks\n", path, len(sheet.Rules()), len(sheet.AllKeyframes()))

	for _, kf := range sheet.AllKeyframes() {
		var first, last float64
		if len(kf.Stops) > 0 {
			first, last = kf.Stops[0].At, kf.Stops[len(kf.Stops)-1].At
		}
		fmt.Printf("  @keyframes %s: %d stops, %s%% .. %s%%\n",
			kf.Name, len(kf.Stops), css.FormatPercent(first), css.FormatPercent(last))
		if selectors, ok := bound[kf.Name]; ok {
			for _, sel := range selectors {
				fmt.Printf("    bound to %s\n", sel)
			}
			delete(bound, kf.Name)
		} else {
			fmt.Printf("    WARNING: not bound to any selector\n")
		}
	}

	for name, selectors := range bound {
		for _, sel := range selectors {
			fmt.Printf("  WARNING: %s references missing @keyframes %s\n", sel, name)
		}
	}
	for _, w := range sheet.Warnings {
		fmt.Printf("  parser warning: %s\n", w)
	}
	return nil
}
