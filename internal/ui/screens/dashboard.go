package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sidenav-tui/internal/layout"
	"sidenav-tui/internal/nav"
	"sidenav-tui/internal/ui/components"
	"sidenav-tui/internal/ui/styles"
)

// DashboardFocus часть страницы, получающая клавиши
type DashboardFocus int

const (
	FocusNav DashboardFocus = iota
	FocusFilter
	FocusMain
)

// Section пункт навигации и записи, которые он показывает в основной панели
type Section struct {
	Icon    string
	Label   string
	Records []string
}

// DefaultSections возвращает разделы дашборда
func DefaultSections() []Section {
	return []Section{
		{Icon: "⌂", Label: "Overview", Records: []string{
			"Open orders: 42", "Pending shipments: 7", "Returns this week: 3",
			"Active customers: 1 204", "Revenue today: 8 310",
		}},
		{Icon: "▤", Label: "Orders", Records: []string{
			"#1042 Alice Moreau - shipped", "#1043 Bo Lindqvist - packing",
			"#1044 Chen Wei - awaiting payment", "#1045 Dana Kowalski - shipped",
			"#1046 Emre Yilmaz - cancelled",
		}},
		{Icon: "◫", Label: "Products", Records: []string{
			"Desk lamp - 18 in stock", "Notebook A5 - 320 in stock",
			"Fountain pen - 0 in stock", "Monitor arm - 12 in stock",
		}},
		{Icon: "☷", Label: "Reports", Records: []string{
			"Weekly sales", "Stock turnover", "Customer retention",
		}},
		{Icon: "⚙", Label: "Settings", Records: []string{
			"Store profile", "Payment providers", "Shipping zones", "Users",
		}},
	}
}

// DashboardScreen страница с гамбургером, полной и мини навигацией, панелью
// фильтров и основной панелью. Геометрия берется из дерева элементов.
type DashboardScreen struct {
	BaseScreen

	theme *styles.Theme
	doc   *nav.Document
	ctrl  *nav.Controller

	layout    layout.PanelLayout
	hamburger components.Hamburger
	filter    textinput.Model
	content   viewport.Model
	help      help.Model
	keys      DashboardKeys

	sections   []Section
	selected   int
	focus      DashboardFocus
	termHeight int
}

// NewDashboardScreen создает дашборд поверх страницы и ее контроллера
func NewDashboardScreen(doc *nav.Document, ctrl *nav.Controller, theme *styles.Theme, keys DashboardKeys) *DashboardScreen {
	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.Placeholder = "Filter records"
	ti.CharLimit = 64

	ds := &DashboardScreen{
		BaseScreen: NewBaseScreen("Dashboard"),
		theme:      theme,
		doc:        doc,
		ctrl:       ctrl,
		hamburger:  components.Hamburger{Style: theme.HamburgerStyle},
		filter:     ti,
		content:    viewport.New(0, 0),
		help:       help.New(),
		keys:       keys,
		sections:   DefaultSections(),
		focus:      FocusNav,
	}
	ds.relayout()
	return ds
}

// Init инициализирует экран (Bubble Tea)
func (ds *DashboardScreen) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения (Bubble Tea)
func (ds *DashboardScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ds.SetSize(msg.Width, msg.Height-1)
		ds.termHeight = msg.Height
		ds.relayout()
		return ds, nil
	case HamburgerActivatedMsg:
		return ds, ds.activate(msg.Source)
	case StyleReloadedMsg:
		ds.ctrl.Reconfigure(msg.Widths)
		ds.relayout()
		return ds, nil
	case tea.MouseMsg:
		return ds, ds.handleMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, ds.keys.Toggle) {
			return ds, ds.activate(msg)
		}
		return ds, ds.defaultKeyAction(msg)
	}
	return ds, nil
}

// activate отправляет клик по гамбургеру. Исходное сообщение доходит до
// обработчика по умолчанию, только если ни один слушатель его не отменил.
func (ds *DashboardScreen) activate(source tea.Msg) tea.Cmd {
	before := ds.ctrl.Toggles()
	proceed := ds.doc.Dispatch(nav.NewClick(nav.HamburgerID, source))

	var cmds []tea.Cmd
	if proceed {
		switch src := source.(type) {
		case tea.KeyMsg:
			cmds = append(cmds, ds.defaultKeyAction(src))
		case tea.MouseMsg:
			cmds = append(cmds, ds.focusAt(src.X, src.Y))
		}
	}

	if ds.ctrl.Toggles() != before {
		ds.relayout()
		toggled := NavToggledMsg{
			State:   ds.ctrl.State(),
			Offset:  ds.doc.ByID(nav.MainID).Style(nav.MarginLeft),
			Toggles: ds.ctrl.Toggles(),
		}
		cmds = append(cmds, func() tea.Msg { return toggled })
	}
	return tea.Batch(cmds...)
}

func (ds *DashboardScreen) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		if ds.hamburger.Hit(msg.X, msg.Y) {
			return ds.activate(msg)
		}
		return ds.focusAt(msg.X, msg.Y)
	case tea.MouseButtonWheelUp:
		ds.content.LineUp(1)
	case tea.MouseButtonWheelDown:
		ds.content.LineDown(1)
	}
	return nil
}

// focusAt переводит фокус в область под курсором
func (ds *DashboardScreen) focusAt(x, y int) tea.Cmd {
	switch {
	case x < ds.navColumnWidth():
		return ds.setFocus(FocusNav)
	case y < ds.layout.FiltersHeight:
		return ds.setFocus(FocusFilter)
	default:
		return ds.setFocus(FocusMain)
	}
}

func (ds *DashboardScreen) setFocus(f DashboardFocus) tea.Cmd {
	ds.focus = f
	if f == FocusFilter {
		return ds.filter.Focus()
	}
	ds.filter.Blur()
	return nil
}

// defaultKeyAction передает клавишу части страницы в фокусе
func (ds *DashboardScreen) defaultKeyAction(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, ds.keys.FocusNext) {
		return ds.setFocus((ds.focus + 1) % 3)
	}

	switch ds.focus {
	case FocusFilter:
		before := ds.filter.Value()
		var cmd tea.Cmd
		ds.filter, cmd = ds.filter.Update(msg)
		if ds.filter.Value() != before {
			ds.refreshContent()
		}
		return cmd
	case FocusNav:
		switch {
		case key.Matches(msg, ds.keys.Up):
			if ds.selected > 0 {
				ds.selected--
				ds.refreshContent()
			}
		case key.Matches(msg, ds.keys.Down):
			if ds.selected < len(ds.sections)-1 {
				ds.selected++
				ds.refreshContent()
			}
		}
		return nil
	default:
		var cmd tea.Cmd
		ds.content, cmd = ds.content.Update(msg)
		return cmd
	}
}

// relayout пересчитывает геометрию по дереву элементов
func (ds *DashboardScreen) relayout() {
	w := ds.ctrl.Widths()
	ds.layout = layout.Calculate(layout.Input{
		Width:          ds.Width(),
		Height:         ds.termHeight,
		FullNavWidth:   w.Full(),
		MiniNavWidth:   w.Mini(),
		FullNavShown:   ds.doc.ByID(nav.FullNavID).HasClass(nav.ShowClass),
		MiniNavShown:   ds.doc.ByID(nav.MiniNavID).HasClass(nav.ShowClass),
		MainMarginLeft: ds.doc.ByID(nav.MainID).Style(nav.MarginLeft),
		FiltersLeft:    ds.doc.ByID(nav.FiltersID).Style(nav.Left),
	})

	ds.filter.Width = max(ds.filterWidth()-lenPrompt(ds.filter.Prompt)-3, 1)
	ds.content.Width = max(ds.mainWidth()-2, 0)
	ds.content.Height = max(ds.layout.ContentHeight-3, 0)
	ds.help.Width = ds.Width()
	ds.refreshContent()
}

// navColumnWidth оставляет место под гамбургер, даже если навигация скрыта
func (ds *DashboardScreen) navColumnWidth() int {
	return max(ds.layout.NavWidth, ds.hamburger.Width())
}

func (ds *DashboardScreen) filterIndent() int {
	return max(ds.layout.FiltersX-ds.navColumnWidth(), 0)
}

func (ds *DashboardScreen) filterWidth() int {
	return max(ds.Width()-ds.navColumnWidth()-ds.filterIndent(), 0)
}

func (ds *DashboardScreen) mainIndent() int {
	return max(ds.layout.MainX-ds.navColumnWidth(), 0)
}

func (ds *DashboardScreen) mainWidth() int {
	return max(ds.Width()-ds.navColumnWidth()-ds.mainIndent(), 0)
}

func (ds *DashboardScreen) refreshContent() {
	ds.content.SetContent(strings.Join(ds.visibleRecords(), "\n"))
	ds.content.GotoTop()
}

// visibleRecords возвращает записи выбранного раздела, подходящие под фильтр
func (ds *DashboardScreen) visibleRecords() []string {
	if len(ds.sections) == 0 {
		return nil
	}
	query := strings.ToLower(strings.TrimSpace(ds.filter.Value()))
	records := ds.sections[ds.selected].Records
	if query == "" {
		return records
	}
	out := make([]string, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r), query) {
			out = append(out, r)
		}
	}
	return out
}

// Focus возвращает часть страницы в фокусе
func (ds *DashboardScreen) Focus() DashboardFocus {
	return ds.focus
}

// FilterValue возвращает текст фильтра
func (ds *DashboardScreen) FilterValue() string {
	return ds.filter.Value()
}

// Layout возвращает последнюю рассчитанную геометрию
func (ds *DashboardScreen) Layout() layout.PanelLayout {
	return ds.layout
}

// ShortHelp возвращает краткую справку
func (ds *DashboardScreen) ShortHelp() string {
	return ds.help.ShortHelpView(ds.keys.ShortHelp())
}

// FullHelp возвращает полную справку
func (ds *DashboardScreen) FullHelp() []string {
	lines := []string{"Dashboard:"}
	for _, b := range ds.keys.ShortHelp() {
		h := b.Help()
		lines = append(lines, "  "+h.Key+" - "+h.Desc)
	}
	lines = append(lines, "  Mouse click on "+components.HamburgerGlyph+" - toggle nav", "")
	return append(lines, ds.BaseScreen.FullHelp()...)
}

func lenPrompt(p string) int {
	return len([]rune(p))
}
