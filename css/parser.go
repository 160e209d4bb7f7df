package css

import (
	"bytes"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into the document model. It understands
// plain rules and @keyframes blocks - everything a generated animation
// sheet contains - and records warnings for anything else.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]Item, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	// selectors seen as qualified rules before the ruleset block opens
	// (grouped selectors split across grammar events)
	var pending []string

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return sheet

		case css.CommentGrammar:
			text := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(string(data), "/*"), "*/"))
			sheet.AddComment(text)

		case css.BeginAtRuleGrammar:
			atRule := string(data)
			if atRule == "@keyframes" {
				kf := p.parseKeyframes(parser, sheet)
				if kf.Name == "" {
					sheet.Warnings = append(sheet.Warnings, "@keyframes block without a name")
					continue
				}
				p.log.Debug("Parsed @keyframes", zap.String("name", kf.Name), zap.Int("stops", len(kf.Stops)))
				sheet.AddKeyframes(&kf)
			} else {
				p.skipAtRuleBlock(parser)
				sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.AtRuleGrammar:
			// Simple @-rule without block (e.g. @import, @charset)
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.QualifiedRuleGrammar:
			pending = append(pending, p.parseSelectors(data, parser.Values())...)

		case css.BeginRulesetGrammar:
			selectors := append(pending, p.parseSelectors(data, parser.Values())...)
			pending = nil
			decls := p.parseDeclarations(parser)

			// Grouped selectors become one rule per selector with the
			// declarations cloned, preserving source order.
			for _, sel := range selectors {
				rule := Rule{
					Selector:     sel,
					Declarations: append([]Declaration(nil), decls...),
				}
				sheet.AddRule(&rule)
			}
		}
	}
}

// parseSelectors rebuilds selector strings from prelude tokens, splitting
// grouped selectors on commas. The tokenizer strips author whitespace around
// combinators, so ">", "+" and "~" get a single space on each side; descendant
// whitespace arrives as explicit whitespace tokens and is kept.
func (p *Parser) parseSelectors(data []byte, values []css.Token) []string {
	var selectors []string
	var sb strings.Builder
	sb.Write(data)

	flush := func() {
		if s := strings.TrimSpace(sb.String()); s != "" {
			selectors = append(selectors, s)
		}
		sb.Reset()
	}

	for _, v := range values {
		switch {
		case v.TokenType == css.CommaToken:
			flush()
		case v.TokenType == css.WhitespaceToken:
			sb.WriteByte(' ')
		case v.TokenType == css.DelimToken && len(v.Data) == 1 && isCombinator(v.Data[0]):
			sb.WriteByte(' ')
			sb.Write(v.Data)
			sb.WriteByte(' ')
		default:
			sb.Write(v.Data)
		}
	}
	flush()
	return selectors
}

func isCombinator(c byte) bool {
	return c == '>' || c == '+' || c == '~'
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			decls = append(decls, Declaration{
				Property: strings.ToLower(string(data)),
				Value:    joinTokens(parser.Values()),
			})

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) are not part of generated
			// sheets - keep the raw text so round-trips do not lose it
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    joinTokens(parser.Values()),
			})
		}
	}
}

// parseKeyframes parses a @keyframes block: the name from the prelude, then
// one Stop per nested ruleset. Grouped stop selectors ("0%, 100%") produce
// one Stop per offset with the declarations cloned.
func (p *Parser) parseKeyframes(parser *css.Parser, sheet *Stylesheet) Keyframes {
	kf := Keyframes{Name: keyframesName(parser.Values())}

	var pending []string
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return kf

		case css.QualifiedRuleGrammar:
			pending = append(pending, p.parseSelectors(data, parser.Values())...)

		case css.BeginRulesetGrammar:
			selectors := append(pending, p.parseSelectors(data, parser.Values())...)
			pending = nil
			decls := p.parseDeclarations(parser)

			for _, sel := range selectors {
				at, ok := parseStopOffset(sel)
				if !ok {
					sheet.Warnings = append(sheet.Warnings, "unsupported keyframe selector: "+sel)
					p.log.Debug("Skipping keyframe selector", zap.String("selector", sel))
					continue
				}
				kf.Stops = append(kf.Stops, Stop{
					At:           at,
					Declarations: append([]Declaration(nil), decls...),
				})
			}
		}
	}
}

// keyframesName extracts the animation name from @keyframes prelude tokens.
func keyframesName(tokens []css.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case css.IdentToken:
			return string(t.Data)
		case css.StringToken:
			return unquote(string(t.Data))
		}
	}
	return ""
}

// parseStopOffset converts a keyframe selector to a percentage offset.
// Handles "from" (0), "to" (100) and explicit percentages.
func parseStopOffset(sel string) (float64, bool) {
	switch strings.ToLower(sel) {
	case "from":
		return 0, true
	case "to":
		return 100, true
	}
	if !strings.HasSuffix(sel, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(sel, "%"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// joinTokens builds a value string from CSS tokens, collapsing whitespace.
func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 && parts[len(parts)-1] != " " {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
