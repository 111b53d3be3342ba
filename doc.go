// Package md2post normalizes informally-styled chat text and renders it for
// publishing targets that do not share a common markup dialect.
//
// # Quick Start
//
// Create a service, pick a target, and apply a preset:
//
//	svc := md2post.New()
//
//	result, err := svc.ApplyPreset(ctx, md2post.Input{
//	    Markdown: "**Launch day!** Check out #tech",
//	    Target:   md2post.TargetStyledText,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Markdown)
//
// The result carries the transformed text (result.Markdown), an HTML
// counterpart (result.HTML, always populated), and observational notes
// about what was rewritten (result.Notes).
//
// # Transformation Pipeline
//
// Every preset is a one-shot composition of the same small stages:
//
//  1. Chat-syntax normalization (*bold*, _italic_, ~strike~ to canonical markdown)
//  2. Code masking (fenced blocks and inline spans shielded behind placeholders)
//  3. Target-specific rewriting (Unicode glyphs, reverse chat syntax, or
//     full-document rendering via Goldmark)
//  4. Hashtag extraction and reflow (styled-text target only)
//
// All stages are pure functions over immutable text; the full pipeline is
// idempotent, and literal code content is never altered by any target.
//
// # Targets
//
//   - TargetStyledText renders emphasis as Unicode Mathematical Alphanumeric
//     glyphs for platforms without rich-text rendering.
//   - TargetReverseChat converts canonical markdown back to informal chat
//     syntax (single-asterisk bold, underscore italic).
//   - TargetDocument delegates to Goldmark (GFM, syntax highlighting) and
//     wraps the output in a static HTML page shell.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2post.New(
//	    md2post.WithSmartQuotes(true),
//	    md2post.WithRenderer(customRenderer),
//	)
//
// # Parallel Processing
//
// Services are safe for sequential reuse; for batch conversion use
// ServicePool so each worker keeps its own rendering pipeline:
//
//	pool := md2post.NewServicePool(4)
//	svc := pool.Acquire()
//	defer pool.Release(svc)
package md2post
