// Package generate implements the program's subcommand actions: compiling
// scene files to CSS, rendering preview pages and inspecting emitted
// stylesheets.
package generate

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"celc/cel"
	"celc/css"
	"celc/misc"
	"celc/scene"
	"celc/state"
)

// compile runs every animation in the scene through the generator into a
// single stylesheet, sharing the program-wide name source so identifiers
// never collide between animations or runs.
func compile(env *state.LocalEnv, sc *scene.Scene) (*css.Stylesheet, error) {
	gen := cel.NewGenerator(env.Names, env.Log)

	sheet := &css.Stylesheet{}
	if env.Cfg.Output.Header {
		sheet.AddComment(fmt.Sprintf("generated by %s %s", misc.GetAppName(), misc.GetVersion()))
	}
	for _, a := range sc.Animations {
		if err := gen.AppendTo(sheet, a.Target, cel.Spec(a.Cels), a.Timing()); err != nil {
			return nil, fmt.Errorf("animation '%s': %w", a.Name, err)
		}
	}
	return sheet, nil
}

// Run compiles a scene file to CSS: celc generate SCENE [DESTINATION].
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	env.Overwrite = cmd.Bool("overwrite")

	if cmd.Args().Len() == 0 {
		return errors.New("no scene file specified")
	}
	scenePath := cmd.Args().Get(0)

	sc, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	env.Rpt.Store("input/scene.yaml", scenePath)

	sheet, err := compile(env, sc)
	if err != nil {
		return err
	}
	data := []byte(sheet.String())
	env.Rpt.StoreData("output/styles.css", data)

	path, err := resolveOutputPath(cmd.Args().Get(1), scenePath, ".css", env.Overwrite)
	if err != nil {
		return err
	}
	if err := writeOutput(path, data); err != nil {
		return err
	}

	if path != "" {
		env.Log.Info("Generated stylesheet",
			zap.String("scene", scenePath),
			zap.String("destination", path),
			zap.Int("animations", len(sc.Animations)))
	}
	return nil
}
