package md2post

import "regexp"

// chatRules rewrites informal chat emphasis into canonical markdown.
// Order is load-bearing: strikethrough first, then bold, then italic.
// Bold must precede italic, otherwise the asterisk emitted by the italic
// rule would be re-captured as a bold candidate.
var chatRules = []rewriteRule{
	{
		pattern:  regexp.MustCompile("~([^~\n\x00]+?)~"),
		okBefore: notRunOrEscape('~'),
		okAfter:  notRun('~'),
		rewrite:  func(c string) string { return "~~" + c + "~~" },
	},
	{
		pattern:  regexp.MustCompile(`\*([^*` + "\n\x00" + `]+?)\*`),
		okBefore: notRunOrEscape('*'),
		okAfter:  notRun('*'),
		rewrite:  func(c string) string { return "**" + c + "**" },
	},
	{
		pattern:  regexp.MustCompile(`_([^_` + "\n\x00" + `]+?)_`),
		okBefore: notWordOrEscape,
		okAfter:  notWord,
		rewrite:  func(c string) string { return "*" + c + "*" },
	},
}

// Normalize rewrites informal chat emphasis (single-asterisk bold,
// underscore italic, single-tilde strikethrough) into canonical markdown.
// Code spans are masked first so literal content is never rewritten, and
// already-canonical markers are never re-escalated. Identity when disabled.
func Normalize(raw string, enabled bool) string {
	if !enabled {
		return raw
	}
	masked, spans := maskCode(normalizeLineEndings(raw))
	for _, rule := range chatRules {
		masked, _ = applyRule(masked, rule)
	}
	out, _ := unmaskCode(masked, spans)
	return out
}
