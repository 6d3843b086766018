package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme содержит все стили приложения
type Theme struct {
	// Размеры экрана
	width  int
	height int

	// Цветовая схема
	colors ColorScheme

	// Стили компонентов
	StatusBarStyle lipgloss.Style
	TitleStyle     lipgloss.Style
	TextStyle      lipgloss.Style
	DimStyle       lipgloss.Style
	ErrorStyle     lipgloss.Style

	// Навигация
	FullNavStyle   lipgloss.Style
	MiniNavStyle   lipgloss.Style
	NavItemStyle   lipgloss.Style
	NavActiveStyle lipgloss.Style
	HamburgerStyle lipgloss.Style

	// Панели
	PanelStyle        lipgloss.Style
	FocusedPanelStyle lipgloss.Style
}

// ColorScheme цветовая схема
type ColorScheme struct {
	Primary     string
	Accent      string
	Background  string
	Surface     string
	Text        string
	TextDim     string
	Error       string
	Border      string
	BorderFocus string
}

// Предустановленные цветовые схемы
var (
	DarkScheme = ColorScheme{
		Primary:     "#7C3AED", // Фиолетовый
		Accent:      "#F59E0B", // Оранжевый
		Background:  "#0F172A", // Темно-синий
		Surface:     "#1E293B", // Темно-серый
		Text:        "#F1F5F9", // Светло-серый
		TextDim:     "#94A3B8", // Серый
		Error:       "#EF4444", // Красный
		Border:      "#334155", // Серый
		BorderFocus: "#7C3AED", // Фиолетовый
	}

	LightScheme = ColorScheme{
		Primary:     "#7C3AED", // Фиолетовый
		Accent:      "#D97706", // Оранжевый
		Background:  "#FFFFFF", // Белый
		Surface:     "#F1F5F9", // Светло-серый
		Text:        "#0F172A", // Темно-синий
		TextDim:     "#64748B", // Серый
		Error:       "#DC2626", // Красный
		Border:      "#CBD5E1", // Светло-серый
		BorderFocus: "#7C3AED", // Фиолетовый
	}
)

// NewTheme создает новую тему
func NewTheme(themeName string) *Theme {
	colors := DarkScheme
	if themeName == "light" {
		colors = LightScheme
	}

	theme := &Theme{
		colors: colors,
	}

	theme.initStyles()
	return theme
}

// Colors возвращает цветовую схему темы
func (t *Theme) Colors() ColorScheme {
	return t.colors
}

// initStyles инициализирует стили
func (t *Theme) initStyles() {
	t.StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Surface)).
		Foreground(lipgloss.Color(t.colors.Text)).
		Padding(0, 1)

	t.TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Primary)).
		Bold(true)

	t.TextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Text))

	t.DimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.TextDim))

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Error)).
		Bold(true)

	t.FullNavStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Surface)).
		Foreground(lipgloss.Color(t.colors.Text))

	t.MiniNavStyle = t.FullNavStyle.
		Align(lipgloss.Center)

	t.NavItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.TextDim))

	t.NavActiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Primary)).
		Bold(true)

	t.HamburgerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Accent)).
		Bold(true)

	t.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.colors.Border))

	t.FocusedPanelStyle = t.PanelStyle.
		BorderForeground(lipgloss.Color(t.colors.BorderFocus))
}

// SetDimensions устанавливает размеры экрана
func (t *Theme) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Width возвращает ширину экрана
func (t *Theme) Width() int {
	return t.width
}

// Height возвращает высоту экрана
func (t *Theme) Height() int {
	return t.height
}

// StatusBar рендерит статус-бар
func (t *Theme) StatusBar(text string) string {
	return t.StatusBarStyle.
		Width(t.width).
		MaxHeight(1).
		Render(text)
}

// ErrorMessage рендерит сообщение об ошибке
func (t *Theme) ErrorMessage(text string) string {
	return t.ErrorStyle.Render("Error: " + text)
}
