// Package style holds the named inline styles shared by the web components.
package style

import (
	"html/template"
	"strings"
)

// Decl is a single CSS declaration
type Decl struct {
	Property string
	Value    string
}

// Style is an ordered list of CSS declarations
type Style []Decl

// Merge returns a new style with the declarations of others applied on top.
// An overridden property keeps its original position.
func (s Style) Merge(others ...Style) Style {
	out := make(Style, len(s))
	copy(out, s)

	for _, other := range others {
		for _, d := range other {
			replaced := false
			for i := range out {
				if out[i].Property == d.Property {
					out[i].Value = d.Value
					replaced = true
					break
				}
			}
			if !replaced {
				out = append(out, d)
			}
		}
	}
	return out
}

// Get returns the value of a property
func (s Style) Get(property string) (string, bool) {
	for _, d := range s {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// String renders the style as an inline declaration list
func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// CSS marks the rendered style as trusted for html/template.
// Only registry values reach this, never user input.
func (s Style) CSS() template.CSS {
	return template.CSS(s.String())
}
