package app

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidenav-tui/internal/config"
	"sidenav-tui/internal/nav"
	"sidenav-tui/internal/testutil"
	"sidenav-tui/internal/ui/screens"
)

// testApp creates an App with default config and a test logger.
func testApp(t *testing.T) *App {
	t.Helper()
	a, err := New(config.DefaultConfig(), WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)
	t.Cleanup(a.Events().Wait)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return a
}

// drain runs cmd and feeds every produced message back into the app.
func drain(t *testing.T, a *App, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if msg == nil {
			continue
		}
		if cmds, ok := nestedCmds(msg); ok {
			queue = append(queue, cmds...)
			continue
		}
		seen = append(seen, msg)
		_, next := a.Update(msg)
		queue = append(queue, next)
	}
	return seen
}

var cmdType = reflect.TypeOf((*tea.Cmd)(nil)).Elem()

// nestedCmds unpacks batch and sequence messages, both of which are slices of
// commands.
func nestedCmds(msg tea.Msg) ([]tea.Cmd, bool) {
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i], _ = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

func ctrlKey(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestNewStartsOnDashboard(t *testing.T) {
	a := testApp(t)

	assert.Equal(t, DashboardScreen, a.CurrentScreen())
	assert.Equal(t, nav.Expanded, a.Controller().State())
	assert.Equal(t, "24ch", a.Controller().Widths().Full())
	assert.Equal(t, "5ch", a.Controller().Widths().Mini())
	assert.Contains(t, a.View(), "Ready")
}

func TestNewWithMissingWidths(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Style = map[string]string{}

	a, err := New(cfg, WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)
	assert.False(t, a.Controller().Widths().Defined())

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.Equal(t, 1, a.Controller().Toggles())
	assert.Empty(t, a.Document().ByID(nav.MainID).Style(nav.MarginLeft))
}

func TestToggleKeyPublishesEvent(t *testing.T) {
	a := testApp(t)

	got := make(chan Event, 1)
	a.Events().Subscribe(EventNavToggled, func(e Event) { got <- e })

	_, cmd := a.Update(ctrlKey(tea.KeyCtrlB))
	drain(t, a, cmd)

	select {
	case e := <-got:
		ev, ok := e.(*NavToggledEvent)
		require.True(t, ok)
		assert.Equal(t, nav.Collapsed, ev.State)
		assert.Equal(t, "5ch", ev.Offset)
		assert.Equal(t, 1, ev.Toggles)
	case <-time.After(time.Second):
		t.Fatal("nav.toggled event not published")
	}
	assert.Contains(t, a.View(), "nav collapsed")
}

func TestPaletteRunsToggle(t *testing.T) {
	a := testApp(t)

	_, cmd := a.Update(ctrlKey(tea.KeyCtrlP))
	drain(t, a, cmd)
	require.Equal(t, CommandPaletteScreen, a.CurrentScreen())

	_, cmd = a.Update(screens.CommandExecuteMsg{ID: "nav.toggle"})
	drain(t, a, cmd)

	assert.Equal(t, DashboardScreen, a.CurrentScreen())
	assert.Equal(t, 1, a.Controller().Toggles())
	assert.Equal(t, "5ch", a.Document().ByID(nav.FiltersID).Style(nav.Left))
}

func TestPaletteListsCommands(t *testing.T) {
	a := testApp(t)

	entries := a.paletteEntries()
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{"nav.toggle", "palette.open", "help.open", "settings.open", "app.quit"}, ids)

	for _, e := range entries {
		if e.ID == "nav.toggle" {
			assert.Equal(t, "Dashboard", e.Context)
			assert.NotEmpty(t, e.Key)
		}
	}
}

func TestHelpAndBack(t *testing.T) {
	a := testApp(t)

	_, cmd := a.Update(ctrlKey(tea.KeyF1))
	drain(t, a, cmd)
	require.Equal(t, HelpScreen, a.CurrentScreen())
	assert.Contains(t, a.View(), "Toggle navigation")

	_, cmd = a.Update(ctrlKey(tea.KeyEsc))
	drain(t, a, cmd)
	assert.Equal(t, DashboardScreen, a.CurrentScreen())
}

func TestStyleReloadRoutesToDashboard(t *testing.T) {
	a := testApp(t)

	a.Update(ctrlKey(tea.KeyCtrlB))
	_, cmd := a.Update(ctrlKey(tea.KeyF1))
	drain(t, a, cmd)
	require.Equal(t, HelpScreen, a.CurrentScreen())

	a.Update(screens.StyleReloadedMsg{Widths: nav.NewWidths("30ch", "7ch")})
	assert.Equal(t, "7ch", a.Document().ByID(nav.MainID).Style(nav.MarginLeft))
	assert.Contains(t, a.View(), "style reloaded")
}

func TestStyleReloadReplacesConfigForSettings(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	a, err := New(cfg, WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)
	t.Cleanup(a.Events().Wait)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	_, cmd := a.Update(ctrlKey(tea.KeyF2))
	drain(t, a, cmd)
	require.Equal(t, SettingsScreen, a.CurrentScreen())

	require.NoError(t, os.WriteFile(path, []byte("style:\n  full-nav-width: 40ch\n  mini-nav-width: 7ch\n"), 0o644))
	reloaded, err := config.Load(path, nil)
	require.NoError(t, err)
	_, cmd = a.Update(screens.StyleReloadedMsg{Widths: nav.LoadWidths(reloaded), Config: reloaded})
	drain(t, a, cmd)
	assert.Equal(t, "40ch", a.config.PropertyValue(config.FullNavWidthKey))
	assert.Equal(t, "40ch", a.Controller().Widths().Full())

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	drain(t, a, cmd)
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	drain(t, a, cmd)

	saved, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "40ch", saved.PropertyValue(config.FullNavWidthKey))
	assert.Equal(t, "7ch", saved.PropertyValue(config.MiniNavWidthKey))
	assert.Equal(t, "light", saved.Theme)
	assert.Equal(t, "light", a.config.Theme)
}

func TestQuitConfirmation(t *testing.T) {
	a := testApp(t)

	_, cmd := a.Update(ctrlKey(tea.KeyCtrlQ))
	require.NotNil(t, cmd)
	assert.True(t, a.quitDialog.IsVisible())

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	msg := cmd()
	assert.Equal(t, quitConfirmedMsg{confirmed: true}, msg)

	_, quit := a.Update(msg)
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
}

func TestQuitCancelled(t *testing.T) {
	a := testApp(t)

	_, cmd := a.Update(ctrlKey(tea.KeyCtrlC))
	require.NotNil(t, cmd)

	a.Update(ctrlKey(tea.KeyEsc))
	msg := cmd()
	_, next := a.Update(msg)
	assert.Nil(t, next)
	assert.False(t, a.quitDialog.IsVisible())
}

func TestErrorShownInStatusBar(t *testing.T) {
	a := testApp(t)

	a.Update(ErrorMsg{Error: errors.New("boom")})
	assert.Contains(t, a.View(), "boom")
}
