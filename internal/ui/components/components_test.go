package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHamburgerHit(t *testing.T) {
	h := Hamburger{X: 0, Y: 0}
	require.GreaterOrEqual(t, h.Width(), 3)

	assert.True(t, h.Hit(0, 0))
	assert.True(t, h.Hit(h.Width()-1, 0))
	assert.False(t, h.Hit(h.Width(), 0))
	assert.False(t, h.Hit(1, 1))
	assert.Contains(t, h.View(), HamburgerGlyph)
}

func TestConfirmDialogConfirm(t *testing.T) {
	d := NewConfirmDialog("Quit", "Leave?")
	ch := d.Show()
	assert.True(t, d.IsVisible())
	assert.Contains(t, d.View(), "Leave?")

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

	assert.True(t, <-ch)
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())
}

func TestConfirmDialogCancel(t *testing.T) {
	d := NewConfirmDialog("Quit", "Leave?")
	ch := d.Show()

	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, <-ch)
}

func TestConfirmDialogShowTwiceReturnsSameChannel(t *testing.T) {
	d := NewConfirmDialog("Quit", "Leave?")
	first := d.Show()
	second := d.Show()
	assert.Equal(t, first, second)

	d.Hide()
	assert.False(t, <-first)
}

func TestConfirmDialogIgnoresKeysWhenHidden(t *testing.T) {
	d := NewConfirmDialog("Quit", "Leave?")
	assert.Nil(t, d.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, d.IsVisible())
}
