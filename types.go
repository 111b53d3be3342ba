package md2post

import (
	"fmt"
	"strings"
)

// Target selects one of the named transformation recipes.
// There is no runtime transition between targets; each ApplyPreset call is
// a one-shot dispatch.
type Target string

// Known targets.
const (
	// TargetStyledText renders emphasis as Unicode glyphs for platforms
	// without rich-text rendering.
	TargetStyledText Target = "styled-text"

	// TargetReverseChat converts canonical markdown back to informal chat
	// syntax.
	TargetReverseChat Target = "reverse-chat-syntax"

	// TargetDocument renders a full HTML page via the external markdown
	// renderer collaborator.
	TargetDocument Target = "document-wrapper"
)

// ParseTarget validates a target selector string.
// Comparison is case-insensitive; the canonical lowercase form is returned.
func ParseTarget(s string) (Target, error) {
	switch Target(strings.ToLower(s)) {
	case TargetStyledText:
		return TargetStyledText, nil
	case TargetReverseChat:
		return TargetReverseChat, nil
	case TargetDocument:
		return TargetDocument, nil
	}
	return "", fmt.Errorf("%w: %q (must be %s, %s, or %s)",
		ErrUnknownTarget, s, TargetStyledText, TargetReverseChat, TargetDocument)
}

// Input contains transformation parameters.
type Input struct {
	Markdown string // Source text (may be empty; all stages are total)
	Target   Target // Recipe selector (required)
}

// Result is the output of one preset application.
type Result struct {
	Markdown string   // Transformed text in the target's dialect
	HTML     string   // HTML counterpart, always populated
	Notes    []string // Observational transformation notes, in order
}

// RenderOptions configures the external markdown renderer collaborator.
type RenderOptions struct {
	GFM         bool // Enable GitHub Flavored Markdown extensions
	Sanitize    bool // Escape raw HTML instead of passing it through
	SmartQuotes bool // Typographic quote and dash substitution
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	smartQuotes bool
}

// WithSmartQuotes toggles typographic substitution in the document-wrapper
// target. Off by default: chat text quotes identifiers more often than prose.
func WithSmartQuotes(enabled bool) Option {
	return func(s *Service) {
		s.cfg.smartQuotes = enabled
	}
}

// WithRenderer replaces the markdown renderer collaborator (e.g., by tests).
// Panics on nil (programmer error, similar to http.HandleFunc).
func WithRenderer(r Renderer) Option {
	if r == nil {
		panic("md2post: WithRenderer requires a non-nil renderer")
	}
	return func(s *Service) {
		s.renderer = r
	}
}
