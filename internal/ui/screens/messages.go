package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"sidenav-tui/internal/config"
	"sidenav-tui/internal/nav"
)

// HamburgerActivatedMsg requests an activation of the hamburger control.
// Source is the terminal message that triggered it, or nil for commands.
type HamburgerActivatedMsg struct {
	Source tea.Msg
}

// NavToggledMsg reports a completed toggle.
type NavToggledMsg struct {
	State   nav.State
	Offset  string
	Toggles int
}

// StyleReloadedMsg carries a freshly loaded width configuration. Config is
// the reloaded file when the reload came from disk, nil otherwise.
type StyleReloadedMsg struct {
	Widths nav.Widths
	Config *config.Config
}

// CommandExecuteMsg asks the app to run a command.
type CommandExecuteMsg struct {
	ID string
}

// CommandPaletteClosedMsg reports the palette closed without a choice.
type CommandPaletteClosedMsg struct{}

// BackMsg asks the app to return to the previous screen.
type BackMsg struct{}
