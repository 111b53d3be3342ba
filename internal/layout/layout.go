// Package layout wraps rendered HTML fragments in a static page shell.
//
// The shell and its stylesheet are embedded so the document-wrapper target
// works without any filesystem surface. Rendering is responsible for grammar
// and sanitization; this package only supplies the chrome around it.
package layout

import (
	_ "embed"
	"html/template"
	"strings"
)

//go:embed page.html.tmpl
var pageSource string

//go:embed post.css
var postCSS string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

// pageData feeds the embedded shell template.
type pageData struct {
	CSS  template.CSS
	Body template.HTML
}

// WrapPage embeds an already-rendered, already-sanitized HTML fragment in
// the full document shell. The fragment is trusted by contract; everything
// else in the template is static.
func WrapPage(fragment string) string {
	var b strings.Builder
	// The template is embedded and parsed at init; execution over a
	// strings.Builder cannot fail at runtime.
	_ = pageTemplate.Execute(&b, pageData{
		CSS:  template.CSS(postCSS),
		Body: template.HTML(fragment), // #nosec G203 -- sanitized upstream by the renderer
	})
	return b.String()
}
