package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (ss *SettingsScreen) renderMenu() string {
	width := ss.state.menuWidth
	if width <= 0 {
		width = settingsMenuWidth
	}

	var lines []string
	for _, field := range allSettingsFields() {
		name := ss.fieldName(field)
		style := ss.theme.NavItemStyle.Width(width).Padding(0, 1)
		if field == ss.state.selectedField {
			style = ss.theme.NavActiveStyle.Width(width).Padding(0, 1)
		}
		if ss.isFieldChanged(field) {
			name = "* " + name
		}
		lines = append(lines, style.Render(name))
	}

	title := ss.theme.TitleStyle.Render(" Settings ")
	return ss.theme.PanelStyle.Width(width).
		Render(fmt.Sprintf("%s\n%s", title, strings.Join(lines, "\n")))
}

func (ss *SettingsScreen) renderContent() string {
	width := max(ss.state.contentWidth, 10)

	content := &strings.Builder{}
	content.WriteString(ss.theme.TitleStyle.Render(ss.fieldName(ss.state.selectedField)))
	content.WriteString("\n\n")

	if ss.state.editMode {
		content.WriteString(ss.input.View())
	} else {
		valueStyle := ss.theme.TextStyle
		if ss.isFieldChanged(ss.state.selectedField) {
			valueStyle = ss.theme.HamburgerStyle
		}
		value := ss.getCurrentValue()
		if value == "" {
			value = "(not set)"
		}
		content.WriteString(valueStyle.Render(value))
	}

	content.WriteString("\n\n")
	content.WriteString(ss.theme.DimStyle.Render(ss.fieldDescription()))

	if result, ok := ss.state.validation[ss.state.selectedField]; ok && result.Message != "" {
		content.WriteString("\n\n")
		indicator := ss.theme.DimStyle
		if !result.Valid {
			indicator = ss.theme.ErrorStyle
		}
		content.WriteString(indicator.Render(result.Message))
	}

	if ss.state.lastError != nil {
		content.WriteString("\n\n")
		content.WriteString(ss.theme.ErrorMessage(ss.state.lastError.Error()))
	}

	content.WriteString("\n\n")
	hint := "Enter: Edit • Space: Edit"
	if ss.state.editMode {
		hint = "Enter: Apply • Esc: Cancel"
	}
	content.WriteString(ss.theme.DimStyle.Render(hint))

	inner := lipgloss.NewStyle().Padding(1).Width(width).Render(content.String())
	return ss.theme.PanelStyle.Width(width).Render(inner)
}
