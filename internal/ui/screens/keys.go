package screens

import (
	"github.com/charmbracelet/bubbles/key"

	"sidenav-tui/internal/platform"
)

// DashboardKeys key bindings of the dashboard.
type DashboardKeys struct {
	Toggle    key.Binding
	FocusNext key.Binding
	Up        key.Binding
	Down      key.Binding
}

// NewDashboardKeys builds bindings from the configured toggle and focus keys.
func NewDashboardKeys(toggle, focusNext string) DashboardKeys {
	return DashboardKeys{
		Toggle: key.NewBinding(
			key.WithKeys(platform.CanonicalKeyForLookup(toggle)),
			key.WithHelp(platform.DisplayKey(toggle), "toggle nav"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys(platform.CanonicalKeyForLookup(focusNext)),
			key.WithHelp(platform.DisplayKey(focusNext), "focus"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k DashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.FocusNext, k.Up, k.Down}
}

// FullHelp implements help.KeyMap.
func (k DashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
