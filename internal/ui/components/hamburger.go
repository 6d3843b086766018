package components

import (
	"github.com/charmbracelet/lipgloss"
)

// HamburgerGlyph символ кнопки переключения навигации
const HamburgerGlyph = "☰"

// Hamburger кнопка переключения навигации. Положение задается в ячейках
// терминала и используется для попадания щелчком мыши.
type Hamburger struct {
	X, Y  int
	Style lipgloss.Style
}

// Width ширина кнопки вместе с отступами
func (h Hamburger) Width() int {
	return lipgloss.Width(h.label())
}

// Hit сообщает, попадает ли точка в кнопку
func (h Hamburger) Hit(x, y int) bool {
	return y == h.Y && x >= h.X && x < h.X+h.Width()
}

// View отрисовывает кнопку
func (h Hamburger) View() string {
	return h.Style.Render(h.label())
}

func (h Hamburger) label() string {
	return " " + HamburgerGlyph + " "
}
