package md2post

import (
	"strings"
	"testing"
)

func TestMaskCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantSpans int
		wantKinds []spanKind
	}{
		{
			name:      "no code",
			input:     "plain text with *emphasis*",
			wantSpans: 0,
		},
		{
			name:      "inline span",
			input:     "see `x := 1` here",
			wantSpans: 1,
			wantKinds: []spanKind{inlineCode},
		},
		{
			name:      "backtick fence",
			input:     "before\n```go\ncode\n```\nafter",
			wantSpans: 1,
			wantKinds: []spanKind{fencedBlock},
		},
		{
			name:      "tilde fence",
			input:     "~~~\ncode\n~~~",
			wantSpans: 1,
			wantKinds: []spanKind{fencedBlock},
		},
		{
			name:      "inline inside fence is not masked twice",
			input:     "```\na `b` c\n```",
			wantSpans: 1,
			wantKinds: []spanKind{fencedBlock},
		},
		{
			name:      "fence then inline",
			input:     "```\nblock\n```\nand `span`",
			wantSpans: 2,
			wantKinds: []spanKind{fencedBlock, inlineCode},
		},
		{
			name:      "two inline spans",
			input:     "`a` and `b`",
			wantSpans: 2,
			wantKinds: []spanKind{inlineCode, inlineCode},
		},
		{
			name:      "empty input",
			input:     "",
			wantSpans: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			masked, spans := maskCode(tt.input)

			if len(spans) != tt.wantSpans {
				t.Fatalf("maskCode() spans = %d, want %d", len(spans), tt.wantSpans)
			}
			for i, kind := range tt.wantKinds {
				if spans[i].kind != kind {
					t.Errorf("spans[%d].kind = %v, want %v", i, spans[i].kind, kind)
				}
			}
			for _, s := range spans {
				if strings.Contains(masked, s.content) && s.content != s.placeholder {
					t.Errorf("masked text still contains span content %q", s.content)
				}
				if strings.Count(masked, s.placeholder) != 1 {
					t.Errorf("placeholder %q appears %d times, want 1",
						s.placeholder, strings.Count(masked, s.placeholder))
				}
			}
		})
	}
}

func TestMaskUnmaskRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"no code at all",
		"inline `code` span",
		"```go\nfunc main() {}\n```",
		"mixed `a`\n```\nfence\n```\nand `b`",
		"~~~\ntilde fence\n~~~",
	}

	for _, input := range inputs {
		masked, spans := maskCode(input)
		got, missing := unmaskCode(masked, spans)
		if got != input {
			t.Errorf("round trip = %q, want %q", got, input)
		}
		if missing != 0 {
			t.Errorf("missing = %d, want 0", missing)
		}
	}
}

func TestUnmaskCodeMissingPlaceholder(t *testing.T) {
	t.Parallel()

	_, spans := maskCode("keep `this` safe")
	// Simulate a transformation that destroyed the placeholder.
	got, missing := unmaskCode("placeholder is gone", spans)

	if got != "placeholder is gone" {
		t.Errorf("unmaskCode() = %q, want input unchanged", got)
	}
	if missing != 1 {
		t.Errorf("missing = %d, want 1", missing)
	}
}

func TestUnmaskCodeContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "inline loses backticks",
			input: "see `x := 1` here",
			want:  "see x := 1 here",
		},
		{
			name:  "fence loses markers and info string",
			input: "```go\nx := 1\n```",
			want:  "x := 1",
		},
		{
			name:  "tilde fence",
			input: "~~~\nline one\nline two\n~~~",
			want:  "line one\nline two",
		},
		{
			name:  "degenerate single-line fence",
			input: "```abc```",
			want:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			masked, spans := maskCode(tt.input)
			got, missing := unmaskCodeContent(masked, spans)
			if got != tt.want {
				t.Errorf("unmaskCodeContent() = %q, want %q", got, tt.want)
			}
			if missing != 0 {
				t.Errorf("missing = %d, want 0", missing)
			}
		})
	}
}

func TestPlaceholderUniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 100 {
		p := newPlaceholder()
		if seen[p] {
			t.Fatalf("duplicate placeholder %q", p)
		}
		seen[p] = true
		if !strings.HasPrefix(p, "\x00") || !strings.HasSuffix(p, "\x00") {
			t.Fatalf("placeholder %q not NUL-delimited", p)
		}
	}
}
