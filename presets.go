package md2post

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/alnah/go-md2post/internal/layout"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Runs of two or more blank lines
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// One or more blank lines (paragraph gap)
	paragraphGap = regexp.MustCompile(`\n{2,}`)

	// Unordered list marker at line start, indentation preserved
	listMarker = regexp.MustCompile(`(?m)^([ \t]*)[-*] `)
)

// bulletGlyph replaces unordered list markers in styled-text output.
const bulletGlyph = "•" // •

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// collapseBlankLines forces exactly one blank line between paragraphs.
func collapseBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// collapseParagraphGaps flattens blank-line runs to a single newline.
func collapseParagraphGaps(content string) string {
	return paragraphGap.ReplaceAllString(content, "\n")
}

// bulletListMarkers rewrites -/* list markers to a bullet glyph, keeping
// leading indentation, and reports how many lines changed.
func bulletListMarkers(content string) (string, int) {
	count := len(listMarker.FindAllString(content, -1))
	return listMarker.ReplaceAllString(content, "${1}"+bulletGlyph+" "), count
}

// preWrap wraps final text in a pre-escaped, whitespace-preserving shell so
// callers always receive a usable HTML counterpart.
func preWrap(text string) string {
	return `<div class="post-preview" style="white-space: pre-wrap;">` +
		html.EscapeString(text) + `</div>`
}

// applyStyledText renders chat text as Unicode styled text: normalize,
// shield code, substitute glyphs longest-run-first, rewrite list markers,
// tighten paragraph spacing, reflow hashtags to the end, then restore code
// content without its now-bare delimiter punctuation. Code stays masked
// until the very end; restoring earlier would expose literal code content
// to the blank-line and hashtag rewrites.
func (s *Service) applyStyledText(markdown string) Result {
	text := Normalize(markdown, true)
	masked, spans := maskCode(text)

	masked, glyphs := glyphEmphasis(masked)
	masked, lists := bulletListMarkers(masked)
	masked = collapseBlankLines(masked)

	body, tags := extractTrailingTags(masked)
	if len(tags) > 0 {
		body = body + "\n\n" + strings.Join(tags, " ")
	}

	out, missing := unmaskCodeContent(body, spans)

	return Result{
		Markdown: out,
		HTML:     preWrap(out),
		Notes:    styledNotes(glyphs, lists, len(tags), missing),
	}
}

// applyReverseChat converts canonical markdown back to informal chat syntax.
// Italic is rewritten before bold so the single asterisks emitted by the
// bold rule are never re-matched as italic spans.
var reverseChatRules = []rewriteRule{
	{
		pattern:  regexp.MustCompile(`\*([^*` + "\n\x00" + `]+?)\*`),
		okBefore: notRunOrEscape('*'),
		okAfter:  notRun('*'),
		rewrite:  func(c string) string { return "_" + c + "_" },
	},
	{
		pattern:  regexp.MustCompile(`\*\*([^*` + "\n\x00" + `]+?)\*\*`),
		okBefore: notRunOrEscape('*'),
		okAfter:  notRun('*'),
		rewrite:  func(c string) string { return "*" + c + "*" },
	},
}

func (s *Service) applyReverseChat(markdown string) Result {
	masked, spans := maskCode(normalizeLineEndings(markdown))
	masked = collapseParagraphGaps(masked)
	for _, rule := range reverseChatRules {
		masked, _ = applyRule(masked, rule)
	}
	out, missing := unmaskCode(masked, spans)

	var notes []string
	if missing > 0 {
		notes = append(notes, placeholderNote(missing))
	}
	return Result{Markdown: out, HTML: preWrap(out), Notes: notes}
}

// applyDocument delegates rendering entirely to the renderer collaborator
// and wraps the fragment in the embedded page shell. No glyph or hashtag
// logic runs for this target.
func (s *Service) applyDocument(ctx context.Context, markdown string) (Result, error) {
	text := normalizeLineEndings(markdown)
	fragment, err := s.renderer.Render(ctx, text, RenderOptions{
		GFM:         true,
		Sanitize:    true,
		SmartQuotes: s.cfg.smartQuotes,
	})
	if err != nil {
		return Result{}, fmt.Errorf("rendering document: %w", err)
	}
	return Result{
		Markdown: text,
		HTML:     layout.WrapPage(fragment),
	}, nil
}

// styledNotes reports what the styled-text recipe rewrote. Zero counts are
// omitted; an empty note list means the input was already in target form.
func styledNotes(glyphs glyphCounts, lists, tags, missing int) []string {
	var notes []string
	add := func(n int, what string) {
		if n > 0 {
			notes = append(notes, fmt.Sprintf("styled %d %s span(s)", n, what))
		}
	}
	add(glyphs.boldItalic, "bold-italic")
	add(glyphs.bold, "bold")
	add(glyphs.italic, "italic")
	if lists > 0 {
		notes = append(notes, fmt.Sprintf("rewrote %d list marker(s)", lists))
	}
	if tags > 0 {
		notes = append(notes, fmt.Sprintf("moved %d hashtag(s) to the end", tags))
	}
	if missing > 0 {
		notes = append(notes, placeholderNote(missing))
	}
	return notes
}

func placeholderNote(missing int) string {
	return fmt.Sprintf("skipped %d unrestored code placeholder(s)", missing)
}
