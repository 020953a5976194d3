package component

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitish0shr/stock-researcher/internal/web/style"
)

func TestNavEntry_IsActive(t *testing.T) {
	paths := []string{"/", "/stocks", "/login", "/analysis", "/stocks/", "/STOCKS", "", "/unknown", "/login?x=1"}

	for _, path := range paths {
		for _, e := range DefaultNavEntries() {
			want := path == e.TargetPath
			if got := e.IsActive(path); got != want {
				t.Errorf("IsActive(%q) for %s = %v, want %v", path, e.TargetPath, got, want)
			}
		}
	}
}

func TestDefaultNavEntries_Order(t *testing.T) {
	var labels []string
	for _, e := range DefaultNavEntries() {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{"Dashboard", "Stocks", "Analysis", "Login"}, labels)
}

func TestNavBar_ActiveEntries(t *testing.T) {
	tests := []struct {
		name        string
		currentPath string
		want        []string
	}{
		{"dashboard", "/", []string{"/"}},
		{"stocks", "/stocks", []string{"/stocks"}},
		{"login", "/login", []string{"/login"}},
		{"analysis", "/analysis", []string{"/analysis"}},
		{"trailing slash", "/stocks/", nil},
		{"unmatched", "/nowhere", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavBar(DefaultNavEntries(), tt.currentPath)

			var got []string
			for _, e := range nav.ActiveEntries() {
				got = append(got, e.TargetPath)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNavBar_Render(t *testing.T) {
	out, err := NewNavBar(DefaultNavEntries(), "/stocks").Render()
	require.NoError(t, err)

	links := anchors(t, string(out))
	require.Len(t, links, 5, "brand plus four entries")

	assert.Equal(t, "/", links[0].href)
	assert.Equal(t, DefaultBrand, links[0].text)
	assert.False(t, links[0].current)

	for _, l := range links[1:] {
		if l.href == "/stocks" {
			assert.True(t, l.current, "stocks link should be current")
			assert.Equal(t, style.LinkStyle(true).String(), l.style)
		} else {
			assert.False(t, l.current, "%s should not be current", l.href)
			assert.Equal(t, style.LinkStyle(false).String(), l.style)
		}
	}
}

func TestNavBar_RenderUnmatchedPath(t *testing.T) {
	out, err := NewNavBar(DefaultNavEntries(), "/missing").Render()
	require.NoError(t, err)

	assert.NotContains(t, string(out), "aria-current")
	assert.NotContains(t, string(out), "#4a90e2")
}

func TestNavBar_RenderIsDeterministic(t *testing.T) {
	nav := NewNavBar(DefaultNavEntries(), "/login")

	first, err := nav.Render()
	require.NoError(t, err)
	second, err := nav.Render()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

type anchor struct {
	href    string
	style   string
	text    string
	current bool
}

func anchors(t *testing.T, fragment string) []anchor {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)

	var out []anchor
	doc.Find("a").Each(func(i int, s *goquery.Selection) {
		out = append(out, anchor{
			href:    s.AttrOr("href", ""),
			style:   s.AttrOr("style", ""),
			text:    s.Text(),
			current: s.AttrOr("aria-current", "") == "page",
		})
	})
	return out
}
