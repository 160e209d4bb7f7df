package generate

import (
	"bytes"
	"context"
	"errors"
	"html/template"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"celc/preview"
	"celc/scene"
	"celc/state"
)

// RunPreview renders a scene as a standalone HTML demo page:
// celc preview SCENE [DESTINATION].
func RunPreview(ctx context.Context, cmd *cli.Command) error {
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

	page := preview.Page{
		Title: sc.Title,
		Style: template.CSS(sheet.String()),
	}
	for _, a := range sc.Animations {
		page.Animations = append(page.Animations, preview.Animation{
			Name:   a.Name,
			Target: a.Target,
			Cels:   len(a.Cels),
		})
	}

	var buf bytes.Buffer
	if err := preview.Render(&buf, page); err != nil {
		return err
	}
	env.Rpt.StoreData("output/preview.html", buf.Bytes())

	path, err := resolveOutputPath(cmd.Args().Get(1), scenePath, ".html", env.Overwrite)
	if err != nil {
		return err
	}
	if err := writeOutput(path, buf.Bytes()); err != nil {
		return err
	}

	if path != "" {
		env.Log.Info("Generated preview page",
			zap.String("scene", scenePath),
			zap.String("destination", path),
			zap.Int("animations", len(sc.Animations)))
	}
	return nil
}
