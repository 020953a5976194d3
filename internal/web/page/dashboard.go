package page

import (
	"context"
	"html/template"
)

// Dashboard is the landing page
type Dashboard struct{}

func (Dashboard) Path() string { return PathDashboard }
func (Dashboard) Title() string { return "Stock Researcher Dashboard" }

func (Dashboard) Body(ctx context.Context) (template.HTML, error) {
	return `<h1>Stock Researcher</h1><p>Welcome to your production dashboard!</p>`, nil
}
