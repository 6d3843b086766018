package screens

import (
	"maps"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sidenav-tui/internal/config"
	"sidenav-tui/internal/platform"
	"sidenav-tui/internal/ui/styles"
)

const (
	settingsMenuWidth = 25
	settingsMinWidth  = 80
)

// SettingsField represents configurable sections.
type SettingsField int

const (
	ThemeField SettingsField = iota
	FullNavWidthField
	MiniNavWidthField
	WatchField
	LogLevelField
)

func allSettingsFields() []SettingsField {
	return []SettingsField{
		ThemeField,
		FullNavWidthField,
		MiniNavWidthField,
		WatchField,
		LogLevelField,
	}
}

// ValidationResult stores validation status for a field.
type ValidationResult struct {
	Valid   bool
	Message string
}

// validationCompleteMsg emitted when async validation done.
type validationCompleteMsg struct {
	Field     SettingsField
	Result    ValidationResult
	Timestamp time.Time
}

// settingsErrorMsg signals save failure.
type settingsErrorMsg struct {
	Error error
}

// ConfigChangedMsg notifies app that settings were saved.
type ConfigChangedMsg struct {
	Config *config.Config
}

// SettingsScreenState groups state required across files.
type SettingsScreenState struct {
	selectedField SettingsField
	editMode      bool
	hasChanges    bool
	validation    map[SettingsField]ValidationResult
	lastError     error
	menuWidth     int
	contentWidth  int
}

// SettingsScreen renders and edits application configuration.
type SettingsScreen struct {
	BaseScreen

	theme    *styles.Theme
	config   *config.Config
	original *config.Config

	state SettingsScreenState
	input textinput.Model
}

// NewSettingsScreen constructs settings UI with editable copy of config.
func NewSettingsScreen(cfg *config.Config, theme *styles.Theme) *SettingsScreen {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64

	screen := &SettingsScreen{
		BaseScreen: NewBaseScreen("Settings"),
		theme:      theme,
		config:     cloneConfig(cfg),
		original:   cloneConfig(cfg),
		input:      ti,
	}

	screen.state.validation = make(map[SettingsField]ValidationResult)
	screen.state.menuWidth = settingsMenuWidth
	screen.state.selectedField = ThemeField
	return screen
}

// cloneConfig copies cfg so edits never leak into the maps of the original.
func cloneConfig(cfg *config.Config) *config.Config {
	c := *cfg
	c.Style = maps.Clone(cfg.Style)
	c.Keybindings = maps.Clone(cfg.Keybindings)
	return &c
}

// Init kicks off initial validation.
func (ss *SettingsScreen) Init() tea.Cmd {
	return ss.validateAllFields()
}

// Update routes messages depending on edit mode.
func (ss *SettingsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if ss.state.editMode {
			return ss.handleEditMode(m)
		}
		return ss.handleKeyPress(m)
	case tea.WindowSizeMsg:
		ss.handleResize(m)
		return ss, nil
	case validationCompleteMsg:
		ss.state.validation[m.Field] = m.Result
		return ss, nil
	case settingsErrorMsg:
		ss.state.lastError = m.Error
		return ss, nil
	case ConfigChangedMsg:
		if m.Config != nil {
			ss.original = cloneConfig(m.Config)
			ss.config = cloneConfig(m.Config)
		}
		ss.state.lastError = nil
		ss.recalcChangeState()
		return ss, ss.validateAllFields()
	case StyleReloadedMsg:
		if m.Config == nil {
			return ss, nil
		}
		ss.rebase(m.Config)
		return ss, ss.validateAllFields()
	}
	return ss, nil
}

// rebase switches to a config reloaded from disk, keeping unsaved edits on top.
func (ss *SettingsScreen) rebase(cfg *config.Config) {
	edits := make(map[SettingsField]string)
	for _, field := range allSettingsFields() {
		if ss.isFieldChanged(field) {
			edits[field] = ss.valueFor(field)
		}
	}

	ss.original = cloneConfig(cfg)
	ss.config = cloneConfig(cfg)
	for field, value := range edits {
		ss.setValue(field, value)
	}
	ss.recalcChangeState()
}

// View renders the screen.
func (ss *SettingsScreen) View() string {
	if ss.Width() == 0 {
		return "Loading settings..."
	}
	left := ss.renderMenu()
	right := ss.renderContent()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// Title reflects pending changes.
func (ss *SettingsScreen) Title() string {
	if ss.state.hasChanges {
		return "Settings (modified)"
	}
	return "Settings"
}

// HasChanges reports unsaved edits.
func (ss *SettingsScreen) HasChanges() bool {
	return ss.state.hasChanges
}

// Value returns the edited value of field.
func (ss *SettingsScreen) Value(field SettingsField) string {
	return ss.valueFor(field)
}

// Validation returns the last validation result of field.
func (ss *SettingsScreen) Validation(field SettingsField) (ValidationResult, bool) {
	r, ok := ss.state.validation[field]
	return r, ok
}

// ShortHelp returns quick help line.
func (ss *SettingsScreen) ShortHelp() string {
	return platform.ReplacePrimaryModifier("↑↓: Navigate • Enter: Edit • Ctrl+S: Save • R: Reset • T: Toggle theme • Esc: Back")
}

// FullHelp details controls.
func (ss *SettingsScreen) FullHelp() []string {
	help := ss.BaseScreen.FullHelp()
	help = append(help, []string{
		"",
		"Settings Screen:",
		"  ↑/↓ or j/k - Navigate between settings",
		"  Enter or Space - Edit selected setting",
		platform.ReplacePrimaryModifier("  S or Ctrl+S - Save settings to file"),
		"  R - Reset to saved values",
		"  T - Quick toggle theme (dark/light)",
		"  Esc - Cancel edit or go back",
	}...)
	return help
}
