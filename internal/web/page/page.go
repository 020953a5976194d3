// Package page composes full HTML documents for each route of the site.
package page

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

// Route paths
const (
	PathDashboard = "/"
	PathLogin     = "/login"
	PathStocks    = "/stocks"
)

// Page renders the content of a single route
type Page interface {
	// Path returns the route the page is served on
	Path() string

	// Title returns the document title
	Title() string

	// Body renders the page-specific content
	Body(ctx context.Context) (template.HTML, error)
}

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return template.HTML(buf.String()), nil
}

var (
	_ Page = Dashboard{}
	_ Page = Login{}
	_ Page = (*Stocks)(nil)
	_ Page = NotFound{}
)
