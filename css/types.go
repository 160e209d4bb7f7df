// Package css provides a small CSS document model used to build and emit
// generated stylesheets, and a parser to read them back for inspection.
package css

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Declaration is a single "property: value" pair. Declarations are kept in
// an ordered slice, not a map - for generated animation blocks the order in
// which properties appear is part of the readable output.
type Declaration struct {
	Property string
	Value    string
}

// Rule represents a single CSS rule (selector + ordered declarations).
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Get returns the value for a property, or false if not declared.
func (r *Rule) Get(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Add appends a declaration to the rule.
func (r *Rule) Add(property, value string) {
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
}

// Stop is a single timeline stop inside a @keyframes block. At is a
// percentage offset of the animation duration, in [0, 100].
type Stop struct {
	At           float64
	Declarations []Declaration
}

// Keyframes represents a named @keyframes block with its stops in source
// (timeline) order.
type Keyframes struct {
	Name  string
	Stops []Stop
}

// Item is a single top-level item in a stylesheet.
// Exactly one of Comment, Rule or Keyframes is non-nil.
type Item struct {
	Comment   *string
	Rule      *Rule
	Keyframes *Keyframes
}

// Stylesheet is an ordered sequence of top-level CSS items.
type Stylesheet struct {
	Items    []Item
	Warnings []string // parser warnings for unsupported features
}

// AddComment appends a comment item. Text is emitted verbatim between the
// comment markers and must not contain "*/".
func (s *Stylesheet) AddComment(text string) {
	s.Items = append(s.Items, Item{Comment: &text})
}

// AddRule appends a rule item.
func (s *Stylesheet) AddRule(r *Rule) {
	s.Items = append(s.Items, Item{Rule: r})
}

// AddKeyframes appends a @keyframes item.
func (s *Stylesheet) AddKeyframes(k *Keyframes) {
	s.Items = append(s.Items, Item{Keyframes: k})
}

// Rules returns all top-level rules in source order.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

// RulesBySelector returns all rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// AllKeyframes returns all @keyframes blocks in source order.
func (s *Stylesheet) AllKeyframes() []Keyframes {
	var blocks []Keyframes
	for _, item := range s.Items {
		if item.Keyframes != nil {
			blocks = append(blocks, *item.Keyframes)
		}
	}
	return blocks
}

// KeyframesByName returns the @keyframes block with the given name, or nil.
func (s *Stylesheet) KeyframesByName(name string) *Keyframes {
	for _, item := range s.Items {
		if item.Keyframes != nil && item.Keyframes.Name == name {
			return item.Keyframes
		}
	}
	return nil
}

// FormatPercent formats a percentage offset for emission. Up to four
// decimal places are kept, trailing zeros trimmed, so equal float64 values
// always produce identical text and adjacent timeline stops stay textually
// contiguous.
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// FormatSeconds formats a duration value in seconds for emission. Up to six
// decimal places (microseconds) are kept with trailing zeros trimmed, so
// binary float artifacts like 6*0.1 still print as "0.6s".
func FormatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "s"
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Comment != nil:
			n, err = fmt.Fprintf(w, "/* %s */\n", *item.Comment)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule)
		case item.Keyframes != nil:
			n, err = writeKeyframes(w, item.Keyframes)
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeDeclarations(w, rule.Declarations, "  ")
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeDeclarations writes declarations in source order with the given indent.
func writeDeclarations(w io.Writer, decls []Declaration, indent string) (int, error) {
	var total int
	for _, d := range decls {
		n, err := fmt.Fprintf(w, "%s%s: %s;\n", indent, d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// writeKeyframes writes a @keyframes block to w.
func writeKeyframes(w io.Writer, kf *Keyframes) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@keyframes %s {\n", kf.Name)
	total += n
	if err != nil {
		return total, err
	}

	for _, stop := range kf.Stops {
		n, err = fmt.Fprintf(w, "  %s%% {\n", FormatPercent(stop.At))
		total += n
		if err != nil {
			return total, err
		}
		n, err = writeDeclarations(w, stop.Declarations, "    ")
		total += n
		if err != nil {
			return total, err
		}
		n, err = fmt.Fprint(w, "  }\n")
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
