package component

import (
	"html/template"

	"github.com/nitish0shr/stock-researcher/internal/web/style"
)

// DefaultBrand is the label of the brand link
const DefaultBrand = "📊 Stock Researcher"

// NavEntry is a single navigation link
type NavEntry struct {
	Label      string
	TargetPath string
}

// IsActive reports whether the entry points at currentPath.
// Exact, case-sensitive comparison; "/stocks/" does not match "/stocks".
func (e NavEntry) IsActive(currentPath string) bool {
	return currentPath == e.TargetPath
}

// DefaultNavEntries returns the site navigation in display order
func DefaultNavEntries() []NavEntry {
	return []NavEntry{
		{Label: "Dashboard", TargetPath: "/"},
		{Label: "Stocks", TargetPath: "/stocks"},
		{Label: "Analysis", TargetPath: "/analysis"},
		{Label: "Login", TargetPath: "/login"},
	}
}

// NavBar renders the navigation bar for the current route
type NavBar struct {
	Brand       string
	Entries     []NavEntry
	CurrentPath string
}

// NewNavBar creates a navigation bar with the default brand
func NewNavBar(entries []NavEntry, currentPath string) NavBar {
	return NavBar{
		Brand:       DefaultBrand,
		Entries:     entries,
		CurrentPath: currentPath,
	}
}

type navLinkView struct {
	Label  string
	Href   string
	Style  template.CSS
	Active bool
}

type navBarView struct {
	Brand          string
	NavStyle       template.CSS
	ContainerStyle template.CSS
	LogoStyle      template.CSS
	LinksStyle     template.CSS
	Links          []navLinkView
}

var navBarTmpl = template.Must(template.New("navbar").Parse(
	`<nav style="{{.NavStyle}}"><div style="{{.ContainerStyle}}">` +
		`<a href="/" style="{{.LogoStyle}}">{{.Brand}}</a>` +
		`<div style="{{.LinksStyle}}">` +
		`{{range .Links}}<a href="{{.Href}}" style="{{.Style}}"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a>{{end}}` +
		`</div></div></nav>`))

// ActiveEntries returns the entries matching the current path
func (n NavBar) ActiveEntries() []NavEntry {
	var active []NavEntry
	for _, e := range n.Entries {
		if e.IsActive(n.CurrentPath) {
			active = append(active, e)
		}
	}
	return active
}

// Render renders the navigation bar
func (n NavBar) Render() (template.HTML, error) {
	links := make([]navLinkView, 0, len(n.Entries))
	for _, e := range n.Entries {
		active := e.IsActive(n.CurrentPath)
		links = append(links, navLinkView{
			Label:  e.Label,
			Href:   e.TargetPath,
			Style:  style.LinkStyle(active).CSS(),
			Active: active,
		})
	}

	return execute(navBarTmpl, navBarView{
		Brand:          n.Brand,
		NavStyle:       style.Nav.CSS(),
		ContainerStyle: style.NavContainer.CSS(),
		LogoStyle:      style.NavLogo.CSS(),
		LinksStyle:     style.NavLinks.CSS(),
		Links:          links,
	})
}
