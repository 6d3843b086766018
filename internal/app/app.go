package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sidenav-tui/internal/config"
	"sidenav-tui/internal/logging"
	"sidenav-tui/internal/nav"
	"sidenav-tui/internal/ui/components"
	"sidenav-tui/internal/ui/screens"
	"sidenav-tui/internal/ui/styles"
)

// ScreenType определяет тип экрана
type ScreenType int

const (
	DashboardScreen ScreenType = iota
	HelpScreen
	CommandPaletteScreen
	SettingsScreen
)

func (s ScreenType) String() string {
	switch s {
	case DashboardScreen:
		return "Dashboard"
	case HelpScreen:
		return "Help"
	case CommandPaletteScreen:
		return "Command Palette"
	case SettingsScreen:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Option настраивает приложение
type Option func(*App)

// WithLogger задает логгер приложения
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// App представляет главное приложение
type App struct {
	config        *config.Config
	currentScreen ScreenType
	screens       map[ScreenType]screens.Screen
	router        *ScreenRouter
	eventBus      *EventBus
	commands      *CommandRegistry
	theme         *styles.Theme
	quitDialog    *components.ConfirmDialog
	logger        *slog.Logger

	// Страница и контроллер навигации
	doc  *nav.Document
	ctrl *nav.Controller

	// Глобальное состояние
	status    string
	lastError error
}

// New создает новое приложение. Отсутствие элемента страницы считается
// ошибкой запуска.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	app := &App{
		config:     cfg,
		screens:    make(map[ScreenType]screens.Screen),
		eventBus:   NewEventBus(),
		commands:   NewCommandRegistry(),
		theme:      styles.NewTheme(cfg.Theme),
		quitDialog: components.NewConfirmDialog("Quit", "Leave sidenav-tui?"),
		logger:     logging.Discard(),
		status:     "Ready",
	}
	for _, opt := range opts {
		opt(app)
	}

	widths := nav.LoadWidths(cfg)
	if !widths.Defined() {
		app.logger.Warn("nav widths not fully configured",
			"full", widths.Full(), "mini", widths.Mini())
	}

	app.doc = nav.NewPage()
	ctrl, err := nav.New(app.doc, widths, nav.WithLogger(app.logger))
	if err != nil {
		return nil, fmt.Errorf("init nav controller: %w", err)
	}
	app.ctrl = ctrl

	app.router = NewScreenRouter(app)
	app.registerCommands()
	app.subscribeEvents()

	// Дашборд создается сразу: он владеет страницей
	app.screens[DashboardScreen] = app.createScreen(DashboardScreen)
	app.currentScreen = DashboardScreen

	return app, nil
}

// Init инициализирует приложение (Bubble Tea)
func (a *App) Init() tea.Cmd {
	if screen := a.getCurrentScreen(); screen != nil {
		return screen.Init()
	}
	return nil
}

// Update обрабатывает сообщения (Bubble Tea)
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleGlobalKeys(msg)
	case tea.WindowSizeMsg:
		return a.handleWindowResize(msg)
	case ScreenSwitchMsg:
		return a.handleScreenSwitch(msg)
	case ErrorMsg:
		return a.handleError(msg)
	case quitConfirmedMsg:
		if msg.confirmed {
			return a, tea.Quit
		}
		return a, nil
	case screens.HamburgerActivatedMsg:
		return a, a.updateDashboard(msg)
	case screens.NavToggledMsg:
		return a.handleNavToggled(msg)
	case screens.StyleReloadedMsg:
		return a.handleStyleReloaded(msg)
	case screens.ConfigChangedMsg:
		return a.handleConfigChanged(msg)
	case screens.CommandExecuteMsg:
		return a, tea.Sequence(a.router.GoBack(), a.commands.Run(msg.ID, a))
	case screens.CommandPaletteClosedMsg, screens.BackMsg:
		return a, a.router.GoBack()
	}

	// Передаем сообщение текущему экрану
	return a, a.updateCurrent(msg)
}

// View отрисовывает приложение (Bubble Tea)
func (a *App) View() string {
	currentScreen := a.getCurrentScreen()
	if currentScreen == nil {
		return "Loading..."
	}

	view := currentScreen.View()
	if a.quitDialog.IsVisible() {
		view = lipgloss.Place(a.theme.Width(), max(a.theme.Height()-1, 0),
			lipgloss.Center, lipgloss.Center, a.quitDialog.View())
	}

	return fmt.Sprintf("%s\n%s", view, a.renderStatusBar())
}

// getCurrentScreen возвращает текущий экран
func (a *App) getCurrentScreen() screens.Screen {
	return a.screens[a.currentScreen]
}

// updateCurrent передает сообщение текущему экрану
func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	currentScreen := a.getCurrentScreen()
	if currentScreen == nil {
		return nil
	}
	updatedScreen, cmd := currentScreen.Update(msg)
	a.screens[a.currentScreen] = updatedScreen
	return cmd
}

// updateDashboard передает сообщение странице, даже если она не на экране
func (a *App) updateDashboard(msg tea.Msg) tea.Cmd {
	dashboard := a.screens[DashboardScreen]
	if dashboard == nil {
		return nil
	}
	updated, cmd := dashboard.Update(msg)
	a.screens[DashboardScreen] = updated
	return cmd
}

// createScreen создает экран по типу
func (a *App) createScreen(screenType ScreenType) screens.Screen {
	switch screenType {
	case DashboardScreen:
		keys := screens.NewDashboardKeys(
			a.config.Keybindings["toggle_nav"],
			a.config.Keybindings["focus_next"],
		)
		return screens.NewDashboardScreen(a.doc, a.ctrl, a.theme, keys)
	case HelpScreen:
		return screens.NewHelpScreen(a.helpLines, a.theme)
	case CommandPaletteScreen:
		return screens.NewCommandPaletteScreen(a.paletteEntries, a.theme)
	case SettingsScreen:
		return screens.NewSettingsScreen(a.config, a.theme)
	default:
		return nil
	}
}

// helpLines собирает справку страницы и список команд
func (a *App) helpLines() []string {
	var lines []string
	if dashboard := a.screens[DashboardScreen]; dashboard != nil {
		lines = append(lines, dashboard.FullHelp()...)
	}
	lines = append(lines, "", "Commands:")
	for _, cmd := range a.commands.All() {
		if k := cmd.DisplayKey(); k != "" {
			lines = append(lines, "  "+k+" - "+cmd.Title)
		}
	}
	return lines
}

// paletteEntries отдает команды для палитры
func (a *App) paletteEntries() []screens.CommandEntry {
	all := a.commands.All()
	entries := make([]screens.CommandEntry, 0, len(all))
	for _, cmd := range all {
		context := "Global"
		if cmd.Screen != nil {
			context = cmd.Screen.String()
		}
		entries = append(entries, screens.CommandEntry{
			ID:      cmd.ID,
			Title:   cmd.Title,
			Key:     cmd.DisplayKey(),
			Context: context,
			Enabled: cmd.Enabled == nil || cmd.Enabled(a),
		})
	}
	return entries
}

// renderStatusBar отрисовывает статус-бар
func (a *App) renderStatusBar() string {
	text := fmt.Sprintf("%s %s | %s", "☰", a.ctrl.State(), a.status)
	if a.lastError != nil {
		text = a.theme.ErrorMessage(a.lastError.Error())
	}
	if screen := a.getCurrentScreen(); screen != nil {
		text += " | " + screen.ShortHelp()
	}
	return a.theme.StatusBar(text)
}

// Controller возвращает контроллер навигации
func (a *App) Controller() *nav.Controller {
	return a.ctrl
}

// Document возвращает дерево элементов страницы
func (a *App) Document() *nav.Document {
	return a.doc
}

// Events возвращает шину событий
func (a *App) Events() *EventBus {
	return a.eventBus
}

// CurrentScreen возвращает тип активного экрана
func (a *App) CurrentScreen() ScreenType {
	return a.currentScreen
}

// Сообщения для приложения

// ScreenSwitchMsg сообщение о переключении экрана
type ScreenSwitchMsg struct {
	ScreenType ScreenType
}

// ErrorMsg сообщение об ошибке
type ErrorMsg struct {
	Error error
}

type quitConfirmedMsg struct {
	confirmed bool
}
