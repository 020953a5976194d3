package style

import "html/template"

// Navigation bar
var (
	Nav = Style{
		{"background", "#1a1a1a"},
		{"border-bottom", "1px solid #333"},
		{"padding", "1rem 0"},
	}

	NavContainer = Style{
		{"max-width", "1200px"},
		{"margin", "0 auto"},
		{"padding", "0 20px"},
		{"display", "flex"},
		{"justify-content", "space-between"},
		{"align-items", "center"},
	}

	NavLogo = Style{
		{"font-size", "1.5rem"},
		{"font-weight", "bold"},
		{"color", "#fff"},
		{"text-decoration", "none"},
	}

	NavLinks = Style{
		{"display", "flex"},
		{"gap", "2rem"},
	}

	NavLink = Style{
		{"color", "#999"},
		{"text-decoration", "none"},
		{"transition", "color 0.2s"},
	}

	// NavLinkActive is applied on top of NavLink
	NavLinkActive = Style{
		{"color", "#4a90e2"},
		{"font-weight", "bold"},
	}
)

// Page content
var (
	Main = Style{
		{"max-width", "1200px"},
		{"margin", "0 auto"},
		{"padding", "20px"},
	}
)

// CardClass is the class name carried by every stock card
const CardClass = "card"

const sheet = `body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #0f0f0f; color: #eee; }
.card { background: #1a1a1a; border: 1px solid #333; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
.card h3 { margin: 0 0 0.5rem; }`

// LinkStyle returns the style of a navigation link
func LinkStyle(active bool) Style {
	if active {
		return NavLink.Merge(NavLinkActive)
	}
	return NavLink
}

// Sheet returns the document-level stylesheet
func Sheet() template.CSS {
	return template.CSS(sheet)
}
