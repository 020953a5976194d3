package page

import (
	"context"
	"html/template"
)

// Login renders the sign-in form.
// The form has no action, method or named fields: submitting it reloads the
// current URL and sends nothing. Authentication is not implemented.
type Login struct{}

func (Login) Path() string { return PathLogin }
func (Login) Title() string { return "Login – Stock Researcher" }

func (Login) Body(ctx context.Context) (template.HTML, error) {
	return `<h2>Sign in</h2>` +
		`<form>` +
		`<input type="text" placeholder="Username">` +
		`<input type="password" placeholder="Password">` +
		`<button type="submit">Login</button>` +
		`</form>` +
		`<p>Demo login, UI only</p>`, nil
}
