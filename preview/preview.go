// Package preview renders a standalone HTML page demonstrating generated
// cel animations: the stylesheet is inlined and every animation gets a
// container with one numbered box per cel.
package preview

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	sprig "github.com/go-task/slim-sprig/v3"
)

// Animation describes one animated container on the page.
type Animation struct {
	// Name is the human-readable caption.
	Name string
	// Target is the CSS selector the generated rules bind to. Only class
	// selectors can be materialized as demo markup.
	Target string
	// Cels is the number of child elements to render.
	Cels int
}

// Class returns the container's class attribute derived from the target
// selector.
func (a Animation) Class() string {
	return strings.TrimPrefix(a.Target, ".")
}

// Page holds everything the demo template needs.
type Page struct {
	Title string
	// Style is the generated stylesheet text, inlined verbatim.
	Style      template.CSS
	Animations []Animation
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title | default "cel animation preview" }}</title>
<style>
body { font-family: sans-serif; margin: 2em; background: #f4f4f4; }
figure { margin: 0 0 2em 0; }
figcaption { margin-bottom: 0.5em; color: #555; }
.cel-stage { position: relative; width: 12em; height: 8em; background: #fff; border: 1px solid #ccc; }
.cel-stage > * { position: absolute; inset: 0; display: flex; align-items: center; justify-content: center; font-size: 3em; color: #333; }
</style>
<style>
{{ .Style }}
</style>
</head>
<body>
<h1>{{ .Title | default "cel animation preview" }}</h1>
{{- range .Animations }}
<figure>
<figcaption>{{ .Name }} ({{ .Cels }} cels)</figcaption>
<div class="cel-stage {{ .Class }}">
{{- range $i := until .Cels }}
<div>{{ add $i 1 }}</div>
{{- end }}
</div>
</figure>
{{- end }}
</body>
</html>
`

// Render writes the demo page for the given animations.
func Render(w io.Writer, page Page) error {
	for _, a := range page.Animations {
		if !strings.HasPrefix(a.Target, ".") {
			return fmt.Errorf("animation '%s': only class selector targets can be previewed, have '%s'", a.Name, a.Target)
		}
	}

	tmpl, err := template.New("preview").Funcs(template.FuncMap(sprig.FuncMap())).Parse(pageTemplate)
	if err != nil {
		return fmt.Errorf("broken preview template: %w", err)
	}
	if err := tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("unable to render preview: %w", err)
	}
	return nil
}
