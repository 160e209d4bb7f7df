package css_test

import (
	"strings"
	"testing"

	"celc/css"
)

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{50, "50"},
		{100, "100"},
		{100.0 / 3.0, "33.3333"},
		{200.0 / 3.0, "66.6667"},
		{400.0 / 6.0, "66.6667"},
		{12.5, "12.5"},
	}

	for _, tc := range cases {
		if got := css.FormatPercent(tc.in); got != tc.want {
			t.Errorf("FormatPercent(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.75, "0.75s"},
		{0.6, "0.6s"},
		{6 * 0.1, "0.6s"}, // 0.6000000000000001 in float64
		{3, "3s"},
		{2.5, "2.5s"},
	}

	for _, tc := range cases {
		if got := css.FormatSeconds(tc.in); got != tc.want {
			t.Errorf("FormatSeconds(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStylesheet_String(t *testing.T) {
	sheet := &css.Stylesheet{}
	sheet.AddComment("generated")

	rule := &css.Rule{Selector: ".stage > *"}
	rule.Add("opacity", "0")
	rule.Add("animation-duration", "0.75s")
	sheet.AddRule(rule)

	sheet.AddKeyframes(&css.Keyframes{
		Name: "cel-1",
		Stops: []css.Stop{
			{At: 0, Declarations: []css.Declaration{{Property: "opacity", Value: "1"}}},
			{At: 100.0 / 3.0, Declarations: []css.Declaration{{Property: "opacity", Value: "0"}}},
		},
	})

	want := `/* generated */

.stage > * {
  opacity: 0;
  animation-duration: 0.75s;
}

@keyframes cel-1 {
  0% {
    opacity: 1;
  }
  33.3333% {
    opacity: 0;
  }
}
`
	if got := sheet.String(); got != want {
		t.Errorf("emitted CSS mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// Declaration order must survive emission untouched - animation properties
// read in a deliberate order.
func TestStylesheet_DeclarationOrder(t *testing.T) {
	rule := &css.Rule{Selector: "div"}
	rule.Add("z-index", "1")
	rule.Add("animation-name", "a")
	rule.Add("background", "red")

	sheet := &css.Stylesheet{}
	sheet.AddRule(rule)

	out := sheet.String()
	zi := strings.Index(out, "z-index")
	an := strings.Index(out, "animation-name")
	bg := strings.Index(out, "background")
	if !(zi < an && an < bg) {
		t.Errorf("declaration order changed:\n%s", out)
	}
}

func TestStylesheet_Lookups(t *testing.T) {
	sheet := &css.Stylesheet{}
	first := &css.Rule{Selector: ".a"}
	first.Add("animation-name", "x")
	sheet.AddRule(first)
	sheet.AddRule(&css.Rule{Selector: ".b"})
	sheet.AddKeyframes(&css.Keyframes{Name: "x"})

	if got := len(sheet.Rules()); got != 2 {
		t.Errorf("Rules: got %d, want 2", got)
	}
	if got := len(sheet.RulesBySelector(".a")); got != 1 {
		t.Errorf("RulesBySelector: got %d, want 1", got)
	}
	if sheet.KeyframesByName("x") == nil {
		t.Error("KeyframesByName: x not found")
	}
	if sheet.KeyframesByName("y") != nil {
		t.Error("KeyframesByName: found nonexistent block")
	}
	if v, ok := first.Get("animation-name"); !ok || v != "x" {
		t.Errorf("Get: got %q (%v), want x", v, ok)
	}
	if _, ok := first.Get("color"); ok {
		t.Error("Get: found undeclared property")
	}
}
