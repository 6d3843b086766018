package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sidenav-tui/internal/nav"
)

// View отрисовывает экран (Bubble Tea)
func (ds *DashboardScreen) View() string {
	if ds.Width() == 0 || ds.Height() == 0 {
		return "Loading..."
	}

	navColumn := ds.renderNav()
	right := lipgloss.JoinVertical(lipgloss.Left,
		ds.renderFilters(),
		ds.renderMain(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, navColumn, right)
}

// renderNav рисует навигацию с классом show, гамбургер всегда в левой
// верхней ячейке
func (ds *DashboardScreen) renderNav() string {
	width := ds.navColumnWidth()
	height := max(ds.layout.NavHeight, 1)

	ds.hamburger.Style = ds.theme.HamburgerStyle
	lines := []string{ds.hamburger.View()}
	style := lipgloss.NewStyle()
	switch {
	case ds.doc.ByID(nav.FullNavID).HasClass(nav.ShowClass):
		style = ds.theme.FullNavStyle
		for i, s := range ds.sections {
			lines = append(lines, ds.navItem(i, s.Icon+" "+s.Label))
		}
	case ds.doc.ByID(nav.MiniNavID).HasClass(nav.ShowClass):
		style = ds.theme.MiniNavStyle
		for i, s := range ds.sections {
			lines = append(lines, ds.navItem(i, s.Icon))
		}
	}

	return style.
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (ds *DashboardScreen) navItem(i int, label string) string {
	if i == ds.selected {
		st := ds.theme.NavActiveStyle
		if ds.focus == FocusNav {
			st = st.Underline(true)
		}
		return st.Render(label)
	}
	return ds.theme.NavItemStyle.Render(label)
}

func (ds *DashboardScreen) renderFilters() string {
	width := ds.filterWidth()
	indent := strings.Repeat(" ", ds.filterIndent())
	if width <= 0 {
		return indent
	}

	if ds.layout.Narrow {
		return indent + lipgloss.NewStyle().MaxWidth(width).Render(ds.filter.View())
	}

	panel := ds.theme.PanelStyle
	if ds.focus == FocusFilter {
		panel = ds.theme.FocusedPanelStyle
	}
	box := panel.Width(max(width-2, 0)).MaxWidth(width).Render(ds.filter.View())
	return indentBlock(box, indent)
}

func (ds *DashboardScreen) renderMain() string {
	width := ds.mainWidth()
	indent := strings.Repeat(" ", ds.mainIndent())
	if width <= 2 {
		return indent
	}

	title := ds.theme.TitleStyle.Render(ds.currentTitle())
	body := ds.content.View()
	if len(ds.visibleRecords()) == 0 {
		body = ds.theme.DimStyle.Render("No records match filter")
	}

	panel := ds.theme.PanelStyle
	if ds.focus == FocusMain {
		panel = ds.theme.FocusedPanelStyle
	}
	box := panel.
		Width(width - 2).
		Height(max(ds.layout.ContentHeight-2, 0)).
		MaxWidth(width).
		MaxHeight(ds.layout.ContentHeight).
		Render(title + "\n" + body)
	return indentBlock(box, indent)
}

func (ds *DashboardScreen) currentTitle() string {
	if len(ds.sections) == 0 {
		return ""
	}
	return ds.sections[ds.selected].Label
}

func indentBlock(block, indent string) string {
	if indent == "" {
		return block
	}
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}
