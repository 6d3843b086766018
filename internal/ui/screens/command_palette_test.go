package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidenav-tui/internal/ui/styles"
)

func testEntries() []CommandEntry {
	return []CommandEntry{
		{ID: "nav.toggle", Title: "Toggle navigation", Key: "Ctrl+B", Enabled: true},
		{ID: "help.open", Title: "Open help", Key: "F1", Enabled: true},
		{ID: "app.quit", Title: "Quit", Key: "Ctrl+Q", Enabled: false},
	}
}

func newTestPalette(t *testing.T) *CommandPaletteScreen {
	t.Helper()
	ps := NewCommandPaletteScreen(testEntries, styles.NewTheme("dark"))
	ps.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	ps.OnEnter()
	return ps
}

func TestCommandPaletteListsAllWithoutQuery(t *testing.T) {
	ps := newTestPalette(t)
	assert.Len(t, ps.Filtered(), 3)

	entry, ok := ps.Selected()
	require.True(t, ok)
	assert.Equal(t, "nav.toggle", entry.ID)
	assert.Contains(t, ps.View(), "Toggle navigation")
}

func TestCommandPaletteFuzzyFilter(t *testing.T) {
	ps := newTestPalette(t)

	for _, r := range "tgnav" {
		ps.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	require.Len(t, ps.Filtered(), 1)
	assert.Equal(t, "nav.toggle", ps.Filtered()[0].ID)

	for _, r := range "zzz" {
		ps.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Empty(t, ps.Filtered())
	_, ok := ps.Selected()
	assert.False(t, ok)
	assert.Contains(t, ps.View(), "No commands match filter")
}

func TestCommandPaletteExecute(t *testing.T) {
	ps := newTestPalette(t)

	ps.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := ps.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, CommandExecuteMsg{ID: "help.open"}, cmd())
}

func TestCommandPaletteSkipsDisabled(t *testing.T) {
	ps := newTestPalette(t)

	ps.Update(tea.KeyMsg{Type: tea.KeyDown})
	ps.Update(tea.KeyMsg{Type: tea.KeyDown})
	ps.Update(tea.KeyMsg{Type: tea.KeyDown})
	entry, ok := ps.Selected()
	require.True(t, ok)
	assert.Equal(t, "app.quit", entry.ID)

	_, cmd := ps.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestCommandPaletteEscCloses(t *testing.T) {
	ps := newTestPalette(t)
	_, cmd := ps.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CommandPaletteClosedMsg{}, cmd())
}

func TestHelpScreenShowsSource(t *testing.T) {
	hs := NewHelpScreen(func() []string { return []string{"Dashboard:", "  Ctrl+B - toggle nav"} }, styles.NewTheme("dark"))
	hs.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	hs.OnEnter()

	md := hs.markdown()
	assert.Contains(t, md, "## Dashboard")
	assert.Contains(t, md, "- Ctrl+B - toggle nav")
	assert.Contains(t, md, "80x23")
	assert.Contains(t, hs.View(), "Help")

	_, cmd := hs.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())
}
