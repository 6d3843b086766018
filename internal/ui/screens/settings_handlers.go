package screens

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (ss *SettingsScreen) handleKeyPress(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		ss.selectPreviousField()
		return ss, nil
	case "down", "j":
		ss.selectNextField()
		return ss, nil
	case "enter", " ":
		return ss.enterEditMode()
	case "s", "ctrl+s":
		return ss, ss.saveSettings()
	case "r":
		return ss, ss.resetSettings()
	case "t":
		ss.toggleTheme()
		return ss, nil
	case "esc":
		return ss, func() tea.Msg { return BackMsg{} }
	}
	return ss, nil
}

func (ss *SettingsScreen) handleEditMode(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return ss.commitEdit()
	case tea.KeyEsc:
		ss.cancelEdit()
		return ss, nil
	}

	var cmd tea.Cmd
	ss.input, cmd = ss.input.Update(msg)
	return ss, cmd
}

func (ss *SettingsScreen) handleResize(msg tea.WindowSizeMsg) {
	ss.SetSize(msg.Width, msg.Height-1)
	ss.state.menuWidth = settingsMenuWidth
	if ss.Width() < settingsMinWidth {
		ss.state.menuWidth = ss.Width() / 3
	}
	ss.state.contentWidth = ss.Width() - ss.state.menuWidth - 4
	if ss.state.contentWidth > 4 {
		ss.input.Width = ss.state.contentWidth - 4
	}
}

func (ss *SettingsScreen) selectPreviousField() {
	fields := allSettingsFields()
	if ss.state.selectedField == fields[0] {
		ss.state.selectedField = fields[len(fields)-1]
		return
	}
	ss.state.selectedField--
}

func (ss *SettingsScreen) selectNextField() {
	fields := allSettingsFields()
	if ss.state.selectedField == fields[len(fields)-1] {
		ss.state.selectedField = fields[0]
		return
	}
	ss.state.selectedField++
}

func (ss *SettingsScreen) enterEditMode() (Screen, tea.Cmd) {
	ss.state.editMode = true
	ss.input.SetValue(ss.getCurrentValue())
	ss.input.CursorEnd()
	return ss, ss.input.Focus()
}

func (ss *SettingsScreen) commitEdit() (Screen, tea.Cmd) {
	ss.setCurrentValue(ss.input.Value())
	ss.state.editMode = false
	ss.input.Blur()
	ss.recalcChangeState()
	return ss, ss.validateField(ss.state.selectedField)
}

func (ss *SettingsScreen) cancelEdit() {
	ss.state.editMode = false
	ss.input.Blur()
}

func (ss *SettingsScreen) toggleTheme() {
	if ss.config.Theme == "dark" {
		ss.config.Theme = "light"
	} else {
		ss.config.Theme = "dark"
	}
	ss.recalcChangeState()
}

// saveSettings writes the edited config to the file it was loaded from.
func (ss *SettingsScreen) saveSettings() tea.Cmd {
	for _, field := range []SettingsField{FullNavWidthField, MiniNavWidthField} {
		if r := validateWidth(ss.valueFor(field)); !r.Valid {
			err := fmt.Errorf("%s: %s", ss.fieldName(field), r.Message)
			return func() tea.Msg { return settingsErrorMsg{Error: err} }
		}
	}

	cfg := cloneConfig(ss.config)
	return func() tea.Msg {
		if cfg.Path() == "" {
			return settingsErrorMsg{Error: fmt.Errorf("config has no file path")}
		}
		if err := cfg.Save(cfg.Path()); err != nil {
			return settingsErrorMsg{Error: fmt.Errorf("save settings: %w", err)}
		}
		return ConfigChangedMsg{Config: cfg}
	}
}

func (ss *SettingsScreen) resetSettings() tea.Cmd {
	ss.config = cloneConfig(ss.original)
	ss.state.lastError = nil
	ss.recalcChangeState()
	return ss.validateAllFields()
}

func (ss *SettingsScreen) recalcChangeState() {
	ss.state.hasChanges = false
	for _, field := range allSettingsFields() {
		if ss.isFieldChanged(field) {
			ss.state.hasChanges = true
			break
		}
	}
}

func (ss *SettingsScreen) validateField(field SettingsField) tea.Cmd {
	value := ss.valueFor(field)
	return func() tea.Msg {
		result := ValidationResult{Valid: true}
		switch field {
		case FullNavWidthField, MiniNavWidthField:
			result = validateWidth(value)
		}
		return validationCompleteMsg{Field: field, Result: result, Timestamp: time.Now()}
	}
}

func (ss *SettingsScreen) validateAllFields() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(allSettingsFields()))
	for _, field := range allSettingsFields() {
		cmds = append(cmds, ss.validateField(field))
	}
	return tea.Batch(cmds...)
}
