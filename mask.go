package md2post

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// spanKind identifies the flavor of a protected code region.
type spanKind int

const (
	fencedBlock spanKind = iota
	inlineCode
)

// Precompiled regex patterns for performance.
var (
	// Fenced code block: matching triple-backtick or triple-tilde markers,
	// non-greedy across lines. RE2 has no backreferences, so the two marker
	// flavors are spelled out; leftmost-match semantics keep them disjoint.
	fencedBlockPattern = regexp.MustCompile("(?s)```.*?```|~~~.*?~~~")

	// Inline code span: single-backtick pair, no embedded newline.
	inlineCodePattern = regexp.MustCompile("`[^`\n]+`")
)

// protectedSpan records one masked code region. Spans are immutable; each is
// created during masking and consumed exactly once during unmasking.
type protectedSpan struct {
	kind        spanKind
	content     string // full region including delimiters
	placeholder string
}

// newPlaceholder builds a unique sentinel token. NUL delimiters and a UUID
// body guarantee the token never collides with authored chat text, and every
// rewrite pattern excludes NUL so no rule can straddle a placeholder.
func newPlaceholder() string {
	return "\x00" + uuid.NewString() + "\x00"
}

// maskCode replaces fenced blocks, then inline code spans, with placeholder
// tokens. Fences go first so a backtick pair inside a fence is never masked
// twice. Returns the masked text and the spans needed to restore it.
func maskCode(text string) (string, []protectedSpan) {
	var spans []protectedSpan

	mask := func(kind spanKind) func(string) string {
		return func(match string) string {
			p := newPlaceholder()
			spans = append(spans, protectedSpan{kind: kind, content: match, placeholder: p})
			return p
		}
	}

	masked := fencedBlockPattern.ReplaceAllStringFunc(text, mask(fencedBlock))
	masked = inlineCodePattern.ReplaceAllStringFunc(masked, mask(inlineCode))
	return masked, spans
}

// unmaskCode restores every span verbatim. A placeholder that is no longer
// present is skipped rather than failing, preserving forward progress; the
// count of skipped spans is returned for note emission.
func unmaskCode(masked string, spans []protectedSpan) (string, int) {
	return restore(masked, spans, func(s protectedSpan) string { return s.content })
}

// unmaskCodeContent restores spans with their code delimiters stripped.
// Literal content stays byte-identical; only the fence or backtick
// punctuation (and any fence info string) is dropped.
func unmaskCodeContent(masked string, spans []protectedSpan) (string, int) {
	return restore(masked, spans, bareContent)
}

func restore(masked string, spans []protectedSpan, render func(protectedSpan) string) (string, int) {
	missing := 0
	for _, s := range spans {
		if !strings.Contains(masked, s.placeholder) {
			missing++
			continue
		}
		masked = strings.Replace(masked, s.placeholder, render(s), 1)
	}
	return masked, missing
}

// bareContent returns a span's literal content without code delimiters.
func bareContent(s protectedSpan) string {
	switch s.kind {
	case inlineCode:
		return strings.Trim(s.content, "`")
	case fencedBlock:
		body := s.content[3 : len(s.content)-3]
		nl := strings.IndexByte(body, '\n')
		if nl < 0 {
			// Degenerate single-line fence such as ```x```.
			return body
		}
		// Drop the opening marker line (fence plus optional info string)
		// and the newline that precedes the closing marker.
		return strings.TrimSuffix(body[nl+1:], "\n")
	}
	return s.content
}
