package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ScreenRouter управляет переключением между экранами
type ScreenRouter struct {
	app     *App
	history []ScreenType // История переходов для навигации назад
}

// NewScreenRouter создает новый роутер
func NewScreenRouter(app *App) *ScreenRouter {
	return &ScreenRouter{
		app:     app,
		history: make([]ScreenType, 0),
	}
}

// SwitchTo переключается на указанный экран
func (r *ScreenRouter) SwitchTo(screenType ScreenType) tea.Cmd {
	if screenType == r.app.currentScreen {
		return nil
	}

	// Добавляем текущий экран в историю
	if len(r.history) == 0 || r.history[len(r.history)-1] != r.app.currentScreen {
		r.history = append(r.history, r.app.currentScreen)
	}

	return func() tea.Msg {
		return ScreenSwitchMsg{ScreenType: screenType}
	}
}

// GoBack возвращается к предыдущему экрану из истории. Без истории
// возвращает на дашборд.
func (r *ScreenRouter) GoBack() tea.Cmd {
	if len(r.history) == 0 {
		if r.app.currentScreen == DashboardScreen {
			return nil
		}
		return func() tea.Msg {
			return ScreenSwitchMsg{ScreenType: DashboardScreen}
		}
	}

	// Берем последний экран из истории
	lastScreen := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]

	return func() tea.Msg {
		return ScreenSwitchMsg{ScreenType: lastScreen}
	}
}

// CanNavigateBack проверяет, можно ли вернуться назад
func (r *ScreenRouter) CanNavigateBack() bool {
	return len(r.history) > 0
}

// ClearHistory очищает историю навигации
func (r *ScreenRouter) ClearHistory() {
	r.history = r.history[:0]
}
