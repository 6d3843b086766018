package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"sidenav-tui/internal/platform"
	"sidenav-tui/internal/ui/styles"
)

// HelpSource отдает строки полной справки текущего экрана.
type HelpSource func() []string

// HelpScreen экран справки по горячим клавишам
type HelpScreen struct {
	BaseScreen

	theme  *styles.Theme
	source HelpSource
	body   viewport.Model
}

// NewHelpScreen создает экран справки
func NewHelpScreen(source HelpSource, theme *styles.Theme) *HelpScreen {
	return &HelpScreen{
		BaseScreen: NewBaseScreen("Help"),
		theme:      theme,
		source:     source,
		body:       viewport.New(0, 0),
	}
}

// Init инициализирует экран (Bubble Tea)
func (hs *HelpScreen) Init() tea.Cmd {
	return nil
}

// OnEnter перечитывает справку при каждом входе
func (hs *HelpScreen) OnEnter() tea.Cmd {
	hs.body.SetContent(hs.render())
	hs.body.GotoTop()
	return nil
}

// Update обрабатывает сообщения (Bubble Tea)
func (hs *HelpScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		hs.SetSize(msg.Width, msg.Height-1)
		hs.body.Width = hs.Width()
		hs.body.Height = max(hs.Height()-2, 0)
		hs.body.SetContent(hs.render())
		return hs, nil
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" {
			return hs, func() tea.Msg { return BackMsg{} }
		}
	}
	var cmd tea.Cmd
	hs.body, cmd = hs.body.Update(msg)
	return hs, cmd
}

// View отрисовывает экран (Bubble Tea)
func (hs *HelpScreen) View() string {
	title := hs.theme.TitleStyle.Render("Help")
	return title + "\n\n" + hs.body.View()
}

// markdown превращает строки справки в markdown: строки без отступа с ":"
// на конце становятся заголовками, строки с отступом пунктами списка.
func (hs *HelpScreen) markdown() string {
	var lines []string
	if hs.source != nil {
		lines = hs.source()
	}
	if len(lines) == 0 {
		lines = hs.BaseScreen.FullHelp()
	}

	var b strings.Builder
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			b.WriteString("\n")
		case !strings.HasPrefix(line, " ") && strings.HasSuffix(trimmed, ":"):
			b.WriteString("## " + strings.TrimSuffix(trimmed, ":") + "\n\n")
		case strings.HasPrefix(line, " "):
			b.WriteString("- " + trimmed + "\n")
		default:
			b.WriteString(trimmed + "\n\n")
		}
	}
	b.WriteString("\n_Screen size: " + hs.dimensionsInfo() + "_\n")
	return platform.ReplacePrimaryModifier(b.String())
}

// render отрисовывает markdown через glamour, при ошибке отдает исходный текст
func (hs *HelpScreen) render() string {
	md := hs.markdown()
	style := "dark"
	if hs.theme != nil && hs.theme.Colors() == styles.LightScheme {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(hs.Width()-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// dimensionsInfo возвращает информацию о размерах экрана
func (hs *HelpScreen) dimensionsInfo() string {
	if hs.Width() == 0 || hs.Height() == 0 {
		return "not set"
	}
	return fmt.Sprintf("%dx%d", hs.Width(), hs.Height())
}

// ShortHelp возвращает краткую справку
func (hs *HelpScreen) ShortHelp() string {
	return "Esc: Back • ↑/↓: Scroll"
}
