package page

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/nitish0shr/stock-researcher/internal/domain/stock"
	"github.com/nitish0shr/stock-researcher/internal/web/component"
	"github.com/nitish0shr/stock-researcher/internal/web/style"
)

// SiteConfig holds the site-wide rendering options
type SiteConfig struct {
	Title string // brand label, without the logo glyph
}

// Result is a rendered document
type Result struct {
	Status int
	Title  string
	HTML   []byte
}

// Renderer composes the layout, navigation bar and page body
type Renderer struct {
	brand   string
	entries []component.NavEntry
	pages   map[string]Page
	order   []string
}

// NewRenderer creates a renderer serving the dashboard, login and stocks pages
func NewRenderer(site SiteConfig, provider stock.Provider) *Renderer {
	brand := component.DefaultBrand
	if site.Title != "" {
		brand = "📊 " + site.Title
	}

	r := &Renderer{
		brand:   brand,
		entries: component.DefaultNavEntries(),
		pages:   make(map[string]Page),
	}
	r.register(Dashboard{})
	r.register(Login{})
	r.register(NewStocks(provider))
	return r
}

func (r *Renderer) register(p Page) {
	r.pages[p.Path()] = p
	r.order = append(r.order, p.Path())
}

// Paths returns the served routes in registration order
func (r *Renderer) Paths() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the page served on path, exact match only
func (r *Renderer) Lookup(path string) (Page, bool) {
	p, ok := r.pages[path]
	return p, ok
}

var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>{{.Sheet}}</style>
</head>
<body>
{{.Nav}}
<main style="{{.MainStyle}}">{{.Body}}</main>
</body>
</html>
`))

type layoutView struct {
	Title     string
	Sheet     template.CSS
	Nav       template.HTML
	MainStyle template.CSS
	Body      template.HTML
}

// Render renders the document for currentPath.
// Unknown paths render the not-found page with status 404.
func (r *Renderer) Render(ctx context.Context, currentPath string) (*Result, error) {
	status := http.StatusOK
	p, ok := r.Lookup(currentPath)
	if !ok {
		status = http.StatusNotFound
		p = NotFound{path: currentPath}
	}

	html, err := r.RenderPage(ctx, p, currentPath)
	if err != nil {
		return nil, err
	}

	return &Result{
		Status: status,
		Title:  p.Title(),
		HTML:   html,
	}, nil
}

// RenderPage renders p inside the layout with the navigation bar for currentPath
func (r *Renderer) RenderPage(ctx context.Context, p Page, currentPath string) ([]byte, error) {
	nav := component.NavBar{
		Brand:       r.brand,
		Entries:     r.entries,
		CurrentPath: currentPath,
	}
	navHTML, err := nav.Render()
	if err != nil {
		return nil, err
	}

	body, err := p.Body(ctx)
	if err != nil {
		return nil, fmt.Errorf("render page %s: %w", p.Path(), err)
	}

	var buf bytes.Buffer
	err = layoutTmpl.Execute(&buf, layoutView{
		Title:     p.Title(),
		Sheet:     style.Sheet(),
		Nav:       navHTML,
		MainStyle: style.Main.CSS(),
		Body:      body,
	})
	if err != nil {
		return nil, fmt.Errorf("render layout: %w", err)
	}
	return buf.Bytes(), nil
}
