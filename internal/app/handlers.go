package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"sidenav-tui/internal/config"
	"sidenav-tui/internal/nav"
	"sidenav-tui/internal/platform"
	"sidenav-tui/internal/ui/screens"
	"sidenav-tui/internal/ui/styles"
)

// handleGlobalKeys обрабатывает глобальные горячие клавиши
func (a *App) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rawKey := msg.String()

	if a.quitDialog.IsVisible() {
		return a, a.quitDialog.Update(msg)
	}

	// Сначала пытаемся найти команду через реестр
	if cmd := a.commands.Resolve(rawKey, a.currentScreen); cmd != nil {
		if cmd.Enabled == nil || cmd.Enabled(a) {
			return a, cmd.Run(a)
		}
		return a, nil
	}

	if platform.MatchesKey(rawKey, "ctrl+c") {
		return a, a.requestQuit()
	}

	// Если глобальные клавиши не обработаны, передаем экрану
	return a, a.updateCurrent(msg)
}

// handleWindowResize обрабатывает изменение размера окна
func (a *App) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Обновляем размеры в теме
	a.theme.SetDimensions(msg.Width, msg.Height)

	// Передаем всем экранам
	var cmds []tea.Cmd
	for screenType, screen := range a.screens {
		if screen != nil {
			updatedScreen, cmd := screen.Update(msg)
			a.screens[screenType] = updatedScreen
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

// handleScreenSwitch обрабатывает переключение экранов
func (a *App) handleScreenSwitch(msg ScreenSwitchMsg) (tea.Model, tea.Cmd) {
	currentScreen := a.getCurrentScreen()
	if currentScreen != nil && !currentScreen.CanExit() {
		return a, nil
	}

	// Выходим из текущего экрана
	var cmds []tea.Cmd
	if currentScreen != nil {
		if exit := currentScreen.OnExit(); exit != nil {
			cmds = append(cmds, exit)
		}
	}

	// Переключаемся на новый экран
	a.currentScreen = msg.ScreenType

	// Инициализируем новый экран если нужно
	newScreen := a.screens[a.currentScreen]
	created := false
	if newScreen == nil {
		newScreen = a.createScreen(a.currentScreen)
		if newScreen == nil {
			a.logger.Error("unknown screen", "screen", int(msg.ScreenType))
			a.currentScreen = DashboardScreen
			return a, tea.Batch(cmds...)
		}
		a.screens[a.currentScreen] = newScreen
		created = true
	}

	// Прокидываем последнюю известную геометрию окна в новый экран,
	// иначе у него останутся нулевые размеры и он будет показывать "Loading..."
	if created && a.theme.Width() > 0 && a.theme.Height() > 0 {
		updated, cmd := newScreen.Update(tea.WindowSizeMsg{Width: a.theme.Width(), Height: a.theme.Height()})
		newScreen = updated
		a.screens[a.currentScreen] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if created {
		if init := newScreen.Init(); init != nil {
			cmds = append(cmds, init)
		}
	}

	// Входим в новый экран
	if enter := newScreen.OnEnter(); enter != nil {
		cmds = append(cmds, enter)
	}

	a.logger.Debug("screen switched", "screen", a.currentScreen.String())
	return a, tea.Batch(cmds...)
}

// handleError обрабатывает ошибки
func (a *App) handleError(msg ErrorMsg) (tea.Model, tea.Cmd) {
	a.lastError = msg.Error
	if msg.Error != nil {
		a.logger.Error("runtime error", "error", msg.Error)
	}
	return a, nil
}

// handleNavToggled публикует событие и обновляет статус
func (a *App) handleNavToggled(msg screens.NavToggledMsg) (tea.Model, tea.Cmd) {
	a.lastError = nil
	a.status = fmt.Sprintf("nav %s", msg.State)
	a.eventBus.Publish(NewNavToggledEvent(msg.State, msg.Offset, msg.Toggles))
	return a, nil
}

// handleStyleReloaded передает новые ширины странице. Если конфиг перечитан
// с диска, он заменяет текущий, а экран настроек переносит на него свои правки.
func (a *App) handleStyleReloaded(msg screens.StyleReloadedMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{a.updateDashboard(msg)}
	if msg.Config != nil {
		a.applyConfig(msg.Config)
		if settings := a.screens[SettingsScreen]; settings != nil {
			updated, cmd := settings.Update(msg)
			a.screens[SettingsScreen] = updated
			cmds = append(cmds, cmd)
		}
	}
	a.status = "style reloaded"
	a.eventBus.Publish(NewStyleReloadedEvent(msg.Widths.Full(), msg.Widths.Mini()))
	return a, tea.Batch(cmds...)
}

// applyConfig заменяет конфиг и пересобирает тему, сохраняя размеры окна
func (a *App) applyConfig(cfg *config.Config) {
	a.config = cfg
	width, height := a.theme.Width(), a.theme.Height()
	*a.theme = *styles.NewTheme(cfg.Theme)
	a.theme.SetDimensions(width, height)
}

// handleConfigChanged применяет сохраненные настройки: тему и ширины навигации
func (a *App) handleConfigChanged(msg screens.ConfigChangedMsg) (tea.Model, tea.Cmd) {
	if msg.Config == nil {
		return a, nil
	}
	a.applyConfig(msg.Config)

	var cmds []tea.Cmd
	if settings := a.screens[SettingsScreen]; settings != nil {
		updated, cmd := settings.Update(msg)
		a.screens[SettingsScreen] = updated
		cmds = append(cmds, cmd)
	}

	_, cmd := a.handleStyleReloaded(screens.StyleReloadedMsg{Widths: nav.LoadWidths(a.config)})
	cmds = append(cmds, cmd)
	a.status = "settings saved"
	return a, tea.Batch(cmds...)
}

func (a *App) requestQuit() tea.Cmd {
	if a.quitDialog == nil {
		return tea.Quit
	}
	if a.quitDialog.IsVisible() {
		return nil
	}

	ch := a.quitDialog.Show()
	return func() tea.Msg {
		confirmed := <-ch
		return quitConfirmedMsg{confirmed: confirmed}
	}
}
