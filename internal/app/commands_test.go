package app

import (
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidenav-tui/internal/nav"
)

func TestRegistryResolvePrefersScreenCommand(t *testing.T) {
	r := NewCommandRegistry()
	dashboard := DashboardScreen
	r.Register(&Command{ID: "global", Title: "Global", Key: "ctrl+k"})
	r.Register(&Command{ID: "local", Title: "Local", Key: "ctrl+k", Screen: &dashboard})

	assert.Equal(t, "local", r.Resolve("ctrl+k", DashboardScreen).ID)
	assert.Equal(t, "global", r.Resolve("ctrl+k", HelpScreen).ID)
	assert.Nil(t, r.Resolve("ctrl+x", DashboardScreen))
}

func TestRegistryHintIsNotRouted(t *testing.T) {
	r := NewCommandRegistry()
	r.Register(&Command{ID: "nav.toggle", Title: "Toggle", Hint: "ctrl+b"})

	assert.Nil(t, r.Resolve("ctrl+b", DashboardScreen))
	assert.Equal(t, "Ctrl+B", r.Get("nav.toggle").DisplayKey())
}

func TestRegistryIgnoresInvalid(t *testing.T) {
	r := NewCommandRegistry()
	r.Register(nil)
	r.Register(&Command{Title: "No id"})
	assert.Empty(t, r.All())

	var nilRegistry *CommandRegistry
	assert.Nil(t, nilRegistry.Get("x"))
}

func TestRegistryRunRespectsEnabled(t *testing.T) {
	r := NewCommandRegistry()
	var runs int
	enabled := false
	r.Register(&Command{
		ID:      "x",
		Title:   "X",
		Enabled: func(*App) bool { return enabled },
		Run: func(*App) tea.Cmd {
			runs++
			return nil
		},
	})

	r.Run("x", nil)
	assert.Zero(t, runs)

	enabled = true
	r.Run("x", nil)
	assert.Equal(t, 1, runs)

	assert.Nil(t, r.Run("missing", nil))
}

func TestRegistryAllSortedByTitle(t *testing.T) {
	r := NewCommandRegistry()
	r.Register(&Command{ID: "b", Title: "Beta"})
	r.Register(&Command{ID: "a", Title: "Alpha"})

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].Title)
	assert.Equal(t, "Beta", all[1].Title)
}

func TestRouterHistory(t *testing.T) {
	a := testApp(t)
	r := a.router

	assert.Nil(t, r.SwitchTo(DashboardScreen))
	assert.False(t, r.CanNavigateBack())

	cmd := r.SwitchTo(HelpScreen)
	require.NotNil(t, cmd)
	assert.Equal(t, ScreenSwitchMsg{ScreenType: HelpScreen}, cmd())
	assert.True(t, r.CanNavigateBack())

	back := r.GoBack()
	require.NotNil(t, back)
	assert.Equal(t, ScreenSwitchMsg{ScreenType: DashboardScreen}, back())
	assert.False(t, r.CanNavigateBack())

	r.SwitchTo(HelpScreen)
	r.ClearHistory()
	assert.False(t, r.CanNavigateBack())
	assert.Nil(t, r.GoBack())
}

func TestEventBusDeliversToSubscribers(t *testing.T) {
	eb := NewEventBus()
	var calls atomic.Int32
	done := make(chan Event, 2)
	eb.Subscribe(EventStyleReloaded, func(e Event) {
		calls.Add(1)
		done <- e
	})
	eb.Subscribe(EventStyleReloaded, func(e Event) {
		calls.Add(1)
		done <- e
	})

	eb.Publish(NewStyleReloadedEvent("30ch", "6ch"))
	eb.Wait()
	assert.Equal(t, int32(2), calls.Load())

	e := <-done
	ev, ok := e.(*StyleReloadedEvent)
	require.True(t, ok)
	assert.Equal(t, "30ch", ev.FullNavWidth)
	assert.Equal(t, map[string]string{"full": "30ch", "mini": "6ch"}, ev.Data())
}

func TestEventBusUnsubscribe(t *testing.T) {
	eb := NewEventBus()
	called := make(chan struct{}, 1)
	eb.Subscribe(EventNavToggled, func(Event) { called <- struct{}{} })
	eb.Unsubscribe(EventNavToggled)

	eb.Publish(NewNavToggledEvent(nav.Collapsed, "5ch", 1))
	eb.Wait()

	select {
	case <-called:
		t.Fatal("handler called after unsubscribe")
	case <-time.After(20 * time.Millisecond):
	}
}
