package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"sidenav-tui/internal/ui/styles"
)

// CommandEntry описывает одну команду в палитре.
type CommandEntry struct {
	ID      string
	Title   string
	Key     string
	Context string
	Enabled bool
}

// CommandFetcher возвращает доступные команды.
type CommandFetcher func() []CommandEntry

// CommandPaletteScreen отображает список команд с фильтром.
type CommandPaletteScreen struct {
	BaseScreen

	theme    *styles.Theme
	fetch    CommandFetcher
	filter   textinput.Model
	entries  []CommandEntry
	filtered []CommandEntry
	selected int
}

func NewCommandPaletteScreen(fetch CommandFetcher, theme *styles.Theme) *CommandPaletteScreen {
	ti := textinput.New()
	ti.Placeholder = "Filter commands"
	ti.Focus()

	return &CommandPaletteScreen{
		BaseScreen: NewBaseScreen("Command Palette"),
		theme:      theme,
		fetch:      fetch,
		filter:     ti,
	}
}

func (ps *CommandPaletteScreen) Init() tea.Cmd {
	ps.refresh()
	return textinput.Blink
}

func (ps *CommandPaletteScreen) OnEnter() tea.Cmd {
	ps.filter.SetValue("")
	ps.selected = 0
	ps.refresh()
	return ps.filter.Focus()
}

func (ps *CommandPaletteScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ps.SetSize(m.Width, m.Height-1)
		ps.filter.Width = max(ps.Width()-8, 10)
		return ps, nil
	case tea.KeyMsg:
		switch m.String() {
		case "up", "shift+tab", "ctrl+k":
			if ps.selected > 0 {
				ps.selected--
			}
			return ps, nil
		case "down", "tab", "ctrl+j":
			if ps.selected < len(ps.filtered)-1 {
				ps.selected++
			}
			return ps, nil
		case "enter":
			if entry, ok := ps.Selected(); ok && entry.Enabled {
				return ps, func() tea.Msg { return CommandExecuteMsg{ID: entry.ID} }
			}
			return ps, nil
		case "esc":
			return ps, func() tea.Msg { return CommandPaletteClosedMsg{} }
		}
		before := ps.filter.Value()
		var cmd tea.Cmd
		ps.filter, cmd = ps.filter.Update(m)
		if ps.filter.Value() != before {
			ps.applyFilter()
		}
		return ps, cmd
	}
	return ps, nil
}

func (ps *CommandPaletteScreen) View() string {
	width := ps.Width()
	if width <= 0 {
		width = 80
	}
	width = max(width, 20)

	var lines []string
	if len(ps.filtered) == 0 {
		lines = append(lines, ps.theme.DimStyle.Render("No commands match filter"))
	}
	for i, entry := range ps.filtered {
		prefix := "  "
		style := ps.theme.TextStyle
		if !entry.Enabled {
			style = style.Faint(true)
		}
		if i == ps.selected {
			prefix = "→ "
			style = ps.theme.NavActiveStyle
		}
		line := style.Render(prefix + entry.Title)
		if entry.Context != "" {
			line += ps.theme.DimStyle.Render(" · " + entry.Context)
		}
		if entry.Key != "" {
			line += ps.theme.DimStyle.Render(" [" + entry.Key + "]")
		}
		lines = append(lines, line)
	}

	body := lipgloss.NewStyle().Padding(1).Width(width - 2).
		Render(ps.filter.View() + "\n\n" + strings.Join(lines, "\n"))
	return ps.theme.FocusedPanelStyle.Width(width - 2).Render(body)
}

// Selected возвращает выделенную команду
func (ps *CommandPaletteScreen) Selected() (CommandEntry, bool) {
	if ps.selected < 0 || ps.selected >= len(ps.filtered) {
		return CommandEntry{}, false
	}
	return ps.filtered[ps.selected], true
}

// Filtered возвращает команды, подходящие под фильтр
func (ps *CommandPaletteScreen) Filtered() []CommandEntry {
	return ps.filtered
}

// ShortHelp возвращает краткую справку
func (ps *CommandPaletteScreen) ShortHelp() string {
	return "↑/↓: Select • Enter: Run • Esc: Close"
}

func (ps *CommandPaletteScreen) refresh() {
	if ps.fetch == nil {
		ps.entries = nil
		ps.filtered = nil
		return
	}
	ps.entries = ps.fetch()
	ps.applyFilter()
}

// applyFilter ранжирует команды нечетким поиском по названию и клавише
func (ps *CommandPaletteScreen) applyFilter() {
	query := strings.TrimSpace(ps.filter.Value())
	if query == "" {
		ps.filtered = ps.entries
	} else {
		targets := make([]string, len(ps.entries))
		for i, e := range ps.entries {
			targets[i] = e.Title + " " + e.Key
		}
		matches := fuzzy.Find(query, targets)
		ps.filtered = make([]CommandEntry, len(matches))
		for i, match := range matches {
			ps.filtered[i] = ps.entries[match.Index]
		}
	}

	switch {
	case len(ps.filtered) == 0:
		ps.selected = -1
	case ps.selected >= len(ps.filtered):
		ps.selected = len(ps.filtered) - 1
	case ps.selected < 0:
		ps.selected = 0
	}
}
