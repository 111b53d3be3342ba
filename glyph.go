package md2post

import (
	"regexp"
	"strings"
)

// Mathematical Alphanumeric Symbols base code points (U+1D400 block).
const (
	mathBoldUpper       = 0x1D400
	mathBoldLower       = 0x1D41A
	mathBoldDigit       = 0x1D7CE
	mathItalicUpper     = 0x1D434
	mathItalicLower     = 0x1D44E
	mathBoldItalicUpper = 0x1D468
	mathBoldItalicLower = 0x1D482

	// U+1D455 is reserved; Unicode defines italic h as U+210E (Planck).
	planckH = 0x210E
)

// toBold maps ASCII letters and digits to mathematical bold forms.
// Every other rune (punctuation, whitespace, non-Latin) passes through.
func toBold(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return mathBoldUpper + (r - 'A')
		case r >= 'a' && r <= 'z':
			return mathBoldLower + (r - 'a')
		case r >= '0' && r <= '9':
			return mathBoldDigit + (r - '0')
		}
		return r
	}, s)
}

// toItalic maps ASCII letters to mathematical italic forms.
func toItalic(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == 'h':
			return planckH
		case r >= 'A' && r <= 'Z':
			return mathItalicUpper + (r - 'A')
		case r >= 'a' && r <= 'z':
			return mathItalicLower + (r - 'a')
		}
		return r
	}, s)
}

// toBoldItalic maps ASCII letters to mathematical bold italic forms.
func toBoldItalic(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return mathBoldItalicUpper + (r - 'A')
		case r >= 'a' && r <= 'z':
			return mathBoldItalicLower + (r - 'a')
		}
		return r
	}, s)
}

// glyphCounts tallies emphasis spans rendered as glyphs.
type glyphCounts struct {
	bold       int
	italic     int
	boldItalic int
}

// glyphStyle binds a rewrite rule to the counter it increments.
type glyphStyle int

const (
	styleBoldItalic glyphStyle = iota
	styleBold
	styleItalic
)

// glyphRules resolves emphasis delimiter runs strictly longest-first:
// triple before double before single, so a bold-italic run is never
// partially consumed by the bold rule. All matches are non-greedy and
// same-line; asterisk and underscore runs are treated alike.
var glyphRules = []struct {
	style glyphStyle
	rule  rewriteRule
}{
	{styleBoldItalic, emphasisRule(`\*\*\*`, '*', toBoldItalic)},
	{styleBoldItalic, emphasisRule(`___`, '_', toBoldItalic)},
	{styleBold, emphasisRule(`\*\*`, '*', toBold)},
	{styleBold, emphasisRule(`__`, '_', toBold)},
	{styleItalic, emphasisRule(`\*`, '*', toItalic)},
	{styleItalic, italicUnderscoreRule()},
}

// emphasisRule builds a glyph rule for one delimiter run.
func emphasisRule(quoted string, delim rune, apply func(string) string) rewriteRule {
	return rewriteRule{
		pattern:  regexp.MustCompile(quoted + `([^` + string(delim) + "\n\x00" + `]+?)` + quoted),
		okBefore: notRunOrEscape(delim),
		okAfter:  notRun(delim),
		rewrite:  apply,
	}
}

// italicUnderscoreRule keeps identifier-style tokens (snake_case_name)
// out of the single-underscore italic rule.
func italicUnderscoreRule() rewriteRule {
	r := emphasisRule(`_`, '_', toItalic)
	r.okBefore = notWordOrEscape
	r.okAfter = notWord
	return r
}

// glyphEmphasis renders canonical emphasis spans as Unicode glyphs in
// delimiter-length order. The caller is expected to have masked code spans;
// content behind placeholders is never transformed.
func glyphEmphasis(masked string) (string, glyphCounts) {
	var counts glyphCounts
	for _, g := range glyphRules {
		var n int
		masked, n = applyRule(masked, g.rule)
		switch g.style {
		case styleBoldItalic:
			counts.boldItalic += n
		case styleBold:
			counts.bold += n
		case styleItalic:
			counts.italic += n
		}
	}
	return masked, counts
}

// applyUnicode is the standalone glyph transformation: it masks inline code,
// resolves emphasis runs longest-first, and restores code verbatim.
func applyUnicode(markdown string) string {
	masked, spans := maskCode(markdown)
	masked, _ = glyphEmphasis(masked)
	out, _ := unmaskCode(masked, spans)
	return out
}
