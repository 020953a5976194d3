// Package component renders the reusable view fragments of the site.
package component

import (
	"bytes"
	"fmt"
	"html/template"
)

// Component is a renderable view fragment.
// Render is a pure function of the component's fields.
type Component interface {
	Render() (template.HTML, error)
}

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return template.HTML(buf.String()), nil
}

var (
	_ Component = NavBar{}
	_ Component = StockCard{}
)
