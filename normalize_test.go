package md2post

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single asterisk becomes bold",
			input: "Hello *world*!",
			want:  "Hello **world**!",
		},
		{
			name:  "all three markers",
			input: "*bold* and _italic_ and ~strike~",
			want:  "**bold** and *italic* and ~~strike~~",
		},
		{
			name:  "canonical bold untouched",
			input: "already **bold** here",
			want:  "already **bold** here",
		},
		{
			name:  "canonical strikethrough untouched",
			input: "already ~~done~~ here",
			want:  "already ~~done~~ here",
		},
		{
			name:  "escaped asterisks never rewritten",
			input: `\*not bold\*`,
			want:  `\*not bold\*`,
		},
		{
			name:  "escaped underscore never rewritten",
			input: `\_not italic\_`,
			want:  `\_not italic\_`,
		},
		{
			name:  "identifier underscores untouched",
			input: "use snake_case_name here",
			want:  "use snake_case_name here",
		},
		{
			name:  "no rewrite across line break",
			input: "*spans\nlines*",
			want:  "*spans\nlines*",
		},
		{
			name:  "adjacent spans both rewritten",
			input: "~a~ ~b~ ~c~",
			want:  "~~a~~ ~~b~~ ~~c~~",
		},
		{
			name:  "inline code content untouched",
			input: "Code: `*bold* _italic_`",
			want:  "Code: `*bold* _italic_`",
		},
		{
			name:  "fenced code content untouched",
			input: "```\n*bold* and _italic_\n```\nbut *here* yes",
			want:  "```\n*bold* and _italic_\n```\nbut **here** yes",
		},
		{
			name:  "stray delimiters with spaced content untouched",
			input: "5 * 6 and 7 * 8",
			want:  "5 * 6 and 7 * 8",
		},
		{
			name:  "bold italic run untouched",
			input: "***both***",
			want:  "***both***",
		},
		{
			name:  "CRLF normalized",
			input: "one\r\ntwo\rthree",
			want:  "one\ntwo\nthree",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Normalize(tt.input, true)
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeDisabled(t *testing.T) {
	t.Parallel()

	input := "*bold* and _italic_ and ~strike~\r\n"
	if got := Normalize(input, false); got != input {
		t.Errorf("Normalize(disabled) = %q, want input unchanged", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello *world*!",
		"*bold* and _italic_ and ~strike~",
		"Code: `*bold*` and *real*",
		"nothing special",
		"~a~ ~b~",
	}

	for _, input := range inputs {
		once := Normalize(input, true)
		twice := Normalize(once, true)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
