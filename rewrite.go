package md2post

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// rewriteRule is one ordered, single-line rewrite pass. The pattern captures
// the span content between delimiters; okBefore and okAfter judge the runes
// adjacent to the whole match, since RE2 has no lookaround. Every pattern
// excludes newlines (no rewrite may span a line break) and NUL (no rewrite
// may straddle a masking placeholder).
type rewriteRule struct {
	pattern  *regexp.Regexp
	okBefore func(r rune, exists bool) bool
	okAfter  func(r rune, exists bool) bool
	rewrite  func(content string) string
}

// applyRule rewrites every match whose boundaries pass the rule's predicates
// in one left-to-right linear pass, and reports how many spans it rewrote.
// A rejected match is re-entered just past its opening delimiter so the
// closing delimiter may still open a later span.
func applyRule(text string, rule rewriteRule) (string, int) {
	var b strings.Builder
	pos, count := 0, 0
	for pos < len(text) {
		loc := rule.pattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		content := text[pos+loc[2] : pos+loc[3]]

		prev, prevSize := utf8.DecodeLastRuneInString(text[:start])
		next, nextSize := utf8.DecodeRuneInString(text[end:])
		ok := rule.okBefore(prev, prevSize > 0) &&
			rule.okAfter(next, nextSize > 0) &&
			trimmedContent(content)

		if !ok {
			b.WriteString(text[pos : start+1])
			pos = start + 1
			continue
		}

		b.WriteString(text[pos:start])
		b.WriteString(rule.rewrite(content))
		pos = end
		count++
	}
	b.WriteString(text[pos:])
	return b.String(), count
}

// trimmedContent rejects spans whose content begins or ends with whitespace,
// e.g. the stray pair in "5 ~ 6 and 7 ~ 8" or a list marker's "* item".
func trimmedContent(content string) bool {
	first, _ := utf8.DecodeRuneInString(content)
	last, _ := utf8.DecodeLastRuneInString(content)
	return !unicode.IsSpace(first) && !unicode.IsSpace(last)
}

// Boundary predicates shared by the rule tables.

// notRunOrEscape rejects a delimiter that extends an existing run of delim,
// or one preceded by a backslash escape.
func notRunOrEscape(delim rune) func(rune, bool) bool {
	return func(r rune, exists bool) bool {
		return !exists || (r != delim && r != '\\')
	}
}

// notRun rejects a delimiter followed by more of itself.
func notRun(delim rune) func(rune, bool) bool {
	return func(r rune, exists bool) bool {
		return !exists || r != delim
	}
}

// notWordOrEscape rejects delimiters glued to identifier-style tokens
// (snake_case_name) or escaped.
func notWordOrEscape(r rune, exists bool) bool {
	return !exists || (!isWordRune(r) && r != '\\')
}

// notWord rejects delimiters followed by identifier characters.
func notWord(r rune, exists bool) bool {
	return !exists || !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
