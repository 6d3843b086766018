package screens

import (
	"strconv"
	"strings"

	"sidenav-tui/internal/config"
	"sidenav-tui/internal/layout"
)

func (ss *SettingsScreen) fieldName(field SettingsField) string {
	switch field {
	case ThemeField:
		return "Theme"
	case FullNavWidthField:
		return "Full Nav Width"
	case MiniNavWidthField:
		return "Mini Nav Width"
	case WatchField:
		return "Watch Config File"
	case LogLevelField:
		return "Log Level"
	default:
		return "Unknown"
	}
}

func (ss *SettingsScreen) fieldDescription() string {
	switch ss.state.selectedField {
	case ThemeField:
		return "Choose between 'dark' and 'light' theme. Press 'T' for quick toggle."
	case FullNavWidthField:
		return "Width of the expanded nav: cells (24 or 24ch), pixels (250px) or percent (20%)."
	case MiniNavWidthField:
		return "Width of the collapsed nav. Empty leaves the panels at the stylesheet default."
	case WatchField:
		return "Reload nav widths when the config file changes on disk. Applies on restart."
	case LogLevelField:
		return "Logging level: debug, info, warn, error."
	default:
		return ""
	}
}

func (ss *SettingsScreen) getCurrentValue() string {
	return ss.valueFor(ss.state.selectedField)
}

func (ss *SettingsScreen) valueFor(field SettingsField) string {
	return fieldValue(ss.config, field)
}

func (ss *SettingsScreen) originalValue(field SettingsField) string {
	return fieldValue(ss.original, field)
}

func fieldValue(cfg *config.Config, field SettingsField) string {
	switch field {
	case ThemeField:
		return cfg.Theme
	case FullNavWidthField:
		return cfg.PropertyValue(config.FullNavWidthKey)
	case MiniNavWidthField:
		return cfg.PropertyValue(config.MiniNavWidthKey)
	case WatchField:
		return strconv.FormatBool(cfg.Watch)
	case LogLevelField:
		return cfg.Logging.Level
	default:
		return ""
	}
}

func (ss *SettingsScreen) setCurrentValue(value string) {
	ss.setValue(ss.state.selectedField, value)
}

func (ss *SettingsScreen) setValue(field SettingsField, value string) {
	value = strings.TrimSpace(value)
	switch field {
	case ThemeField:
		if value == "dark" || value == "light" {
			ss.config.Theme = value
		}
	case FullNavWidthField:
		ss.setStyle(config.FullNavWidthKey, value)
	case MiniNavWidthField:
		ss.setStyle(config.MiniNavWidthKey, value)
	case WatchField:
		ss.config.Watch = parseBool(value)
	case LogLevelField:
		switch value {
		case "debug", "info", "warn", "error":
			ss.config.Logging.Level = value
		}
	}
}

func (ss *SettingsScreen) setStyle(name, value string) {
	if ss.config.Style == nil {
		ss.config.Style = make(map[string]string)
	}
	ss.config.Style[name] = value
}

func (ss *SettingsScreen) isFieldChanged(field SettingsField) bool {
	return ss.valueFor(field) != ss.originalValue(field)
}

// validateWidth accepts an empty width or any length the layout can place.
func validateWidth(value string) ValidationResult {
	if value == "" {
		return ValidationResult{Valid: true, Message: "Not set: panels keep the stylesheet default"}
	}
	if _, ok := layout.ParseLength(value, 0); !ok {
		return ValidationResult{Valid: false, Message: "Unsupported length " + strconv.Quote(value)}
	}
	return ValidationResult{Valid: true}
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "on":
		return true
	default:
		return false
	}
}
