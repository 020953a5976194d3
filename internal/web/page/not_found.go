package page

import (
	"context"
	"html/template"
)

// NotFound is rendered for any path without a page
type NotFound struct {
	path string
}

func (p NotFound) Path() string { return p.path }
func (p NotFound) Title() string { return "Not Found – Stock Researcher" }

var notFoundTmpl = template.Must(template.New("notfound").Parse(
	`<h2>Page not found</h2><p>No page at <code>{{.}}</code>.</p>`))

func (p NotFound) Body(ctx context.Context) (template.HTML, error) {
	return execute(notFoundTmpl, p.path)
}
