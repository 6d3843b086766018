// Package nav implements the navigation sidebar toggle: the page element
// tree, the width configuration read from the root style scope and the
// controller that flips between the full and the mini nav.
package nav

import "strings"

// Style variable names read at startup.
const (
	FullNavWidthVar = "full-nav-width"
	MiniNavWidthVar = "mini-nav-width"
)

// StyleScope resolves custom style properties, like a computed style of the
// root element.
type StyleScope interface {
	PropertyValue(name string) string
}

// StyleVars is a map-backed StyleScope. Keys may be written with or without
// the leading "--".
type StyleVars map[string]string

// PropertyValue implements StyleScope.
func (v StyleVars) PropertyValue(name string) string {
	if val, ok := v[name]; ok {
		return val
	}
	name = strings.TrimPrefix(name, "--")
	if val, ok := v[name]; ok {
		return val
	}
	return v["--"+name]
}

// Widths is the immutable width configuration of a session.
type Widths struct {
	full string
	mini string
}

// NewWidths builds a configuration from explicit values.
func NewWidths(full, mini string) Widths {
	return Widths{full: strings.TrimSpace(full), mini: strings.TrimSpace(mini)}
}

// LoadWidths reads full-nav-width and mini-nav-width from the scope. Missing
// keys leave the corresponding width empty.
func LoadWidths(scope StyleScope) Widths {
	if scope == nil {
		return Widths{}
	}
	return NewWidths(
		scope.PropertyValue("--"+FullNavWidthVar),
		scope.PropertyValue("--"+MiniNavWidthVar),
	)
}

// Full returns the expanded nav width.
func (w Widths) Full() string { return w.full }

// Mini returns the collapsed nav width.
func (w Widths) Mini() string { return w.mini }

// Defined reports whether both widths were configured.
func (w Widths) Defined() bool { return w.full != "" && w.mini != "" }

// For returns the offset that matches the state.
func (w Widths) For(s State) string {
	if s == Collapsed {
		return w.mini
	}
	return w.full
}
