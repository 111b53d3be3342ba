package md2post

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer is the external markdown-to-HTML collaborator. The core trusts it
// for CommonMark/GFM grammar compliance and XSS sanitization and does not
// reimplement either. Implementations may be asynchronous; Render must honor
// context cancellation.
type Renderer interface {
	Render(ctx context.Context, markdown string, opts RenderOptions) (string, error)
}

// goldmarkRenderer renders markdown via goldmark (pure Go).
// Built pipelines are cached per option set; the cache mutex is the only
// lock in the package and guards renderer construction, not rendering.
type goldmarkRenderer struct {
	mu        sync.Mutex
	pipelines map[RenderOptions]goldmark.Markdown
}

// newGoldmarkRenderer creates the default renderer collaborator.
func newGoldmarkRenderer() *goldmarkRenderer {
	return &goldmarkRenderer{pipelines: make(map[RenderOptions]goldmark.Markdown)}
}

// pipeline returns the cached goldmark instance for opts, building it once.
func (g *goldmarkRenderer) pipeline(opts RenderOptions) goldmark.Markdown {
	g.mu.Lock()
	defer g.mu.Unlock()

	if md, ok := g.pipelines[opts]; ok {
		return md
	}

	var exts []goldmark.Extender
	if opts.GFM {
		exts = append(exts,
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes for external stylesheet control
				),
			),
		)
	}
	if opts.SmartQuotes {
		exts = append(exts, extension.Typographer)
	}

	rendererOpts := []goldmark.Option{
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Chat text treats newlines as hard breaks
			html.WithXHTML(),
		),
	}
	if !opts.Sanitize {
		rendererOpts = append(rendererOpts,
			goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	md := goldmark.New(rendererOpts...)
	g.pipelines[opts] = md
	return md
}

// Render converts markdown to an HTML fragment. Goldmark has no native
// context support, so cancellation is bridged with a goroutine + select.
func (g *goldmarkRenderer) Render(ctx context.Context, markdown string, opts RenderOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	md := g.pipeline(opts)

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
