package md2post

import (
	"context"
	"fmt"
)

// Service dispatches one-shot transformation presets over a Target.
// All text stages are pure and deterministic; the only asynchronous boundary
// is the renderer collaborator used by the document-wrapper target.
type Service struct {
	cfg      serviceConfig
	renderer Renderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithSmartQuotes, WithRenderer).
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = newGoldmarkRenderer()
	}
	return s
}

// ApplyPreset runs the recipe selected by input.Target.
// An unrecognized target fails fast with ErrUnknownTarget; it is never
// silently ignored. Every lower stage is total over arbitrary text, so the
// styled-text and reverse-chat recipes cannot fail.
func (s *Service) ApplyPreset(ctx context.Context, input Input) (Result, error) {
	switch input.Target {
	case TargetStyledText:
		return s.applyStyledText(input.Markdown), nil
	case TargetReverseChat:
		return s.applyReverseChat(input.Markdown), nil
	case TargetDocument:
		return s.applyDocument(ctx, input.Markdown)
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownTarget, input.Target)
}
