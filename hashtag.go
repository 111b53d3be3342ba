package md2post

import (
	"regexp"
	"strings"
)

// hashtagPattern finds # followed by one or more word characters.
var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// Hex-color run lengths: #rgb, #rgba, #rrggbb, #rrggbbaa.
var hexColorLengths = map[int]bool{3: true, 4: true, 6: true, 8: true}

// isHexColor reports whether a candidate run is a hex-color literal: every
// character a hexadecimal digit and the run exactly 3, 4, 6, or 8 long.
// A genuine hashtag that happens to spell a color (#facade) is suppressed
// too; correcting that would change published output, so it stays.
func isHexColor(run string) bool {
	if !hexColorLengths[len(run)] {
		return false
	}
	for _, r := range run {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// extractTrailingTags removes accepted hashtags from the body and returns
// them in original left-to-right order. Hex-color literals are never
// relocated. One space glued to each removed tag goes with it so the body
// does not accumulate double spacing.
func extractTrailingTags(text string) (string, []string) {
	matches := hashtagPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var tags []string
	var b strings.Builder
	pos := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if isHexColor(text[m[2]:m[3]]) {
			continue
		}
		tags = append(tags, text[start:end])

		segment := text[pos:start]
		switch {
		case strings.HasSuffix(segment, " "):
			segment = segment[:len(segment)-1]
		case end < len(text) && text[end] == ' ':
			end++
		}
		b.WriteString(segment)
		pos = end
	}
	b.WriteString(text[pos:])

	if len(tags) == 0 {
		return text, nil
	}
	return strings.TrimSpace(b.String()), tags
}
