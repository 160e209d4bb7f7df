package preview_test

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"celc/preview"
)

func TestRender(t *testing.T) {
	page := preview.Page{
		Title: "demo reel",
		Style: template.CSS(".walk > * {\n  opacity: 0;\n}\n"),
		Animations: []preview.Animation{
			{Name: "walk", Target: ".walk", Cels: 3},
			{Name: "blink", Target: ".blink", Cels: 2},
		},
	}

	var buf bytes.Buffer
	if err := preview.Render(&buf, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<title>demo reel</title>") {
		t.Error("missing title")
	}
	if !strings.Contains(out, ".walk > * {") {
		t.Error("stylesheet was not inlined verbatim")
	}
	if !strings.Contains(out, `class="cel-stage walk"`) {
		t.Error("missing walk container")
	}
	if !strings.Contains(out, `class="cel-stage blink"`) {
		t.Error("missing blink container")
	}

	// one numbered box per cel
	for _, want := range []string{"<div>1</div>", "<div>2</div>", "<div>3</div>"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing cel box %s", want)
		}
	}
	if got := strings.Count(out, "<div>1</div>"); got != 2 {
		t.Errorf("first cel box rendered %d times, want once per animation (2)", got)
	}
}

func TestRender_DefaultTitle(t *testing.T) {
	var buf bytes.Buffer
	err := preview.Render(&buf, preview.Page{
		Animations: []preview.Animation{{Name: "a", Target: ".a", Cels: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<title>cel animation preview</title>") {
		t.Error("missing default title")
	}
}

func TestRender_RejectsNonClassTarget(t *testing.T) {
	var buf bytes.Buffer
	err := preview.Render(&buf, preview.Page{
		Animations: []preview.Animation{{Name: "a", Target: "#stage", Cels: 1}},
	})
	if err == nil {
		t.Fatal("expected error for non-class target")
	}
	if buf.Len() != 0 {
		t.Error("partial output was written on error")
	}
}
