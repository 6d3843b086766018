package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidenav-tui/internal/app"
	"sidenav-tui/internal/config"
	"sidenav-tui/internal/fs"
	"sidenav-tui/internal/testutil"
	"sidenav-tui/internal/ui/screens"
)

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), path)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "24ch", cfg.PropertyValue(config.FullNavWidthKey))
	assert.Equal(t, "5ch", cfg.PropertyValue(config.MiniNavWidthKey))
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"config", "init", "--config", path})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "init", "--config", path, "--force"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestRootFlagsRegistered(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "full-nav-width", "mini-nav-width", "theme", "log-level", "log-file", "watch"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestStyleReloaderSendsWidths(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style:\n  full-nav-width: 30ch\n  mini-nav-width: 6ch\n"), 0o644))

	cmd := newRootCmd()
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--mini-nav-width", "8ch"}))

	var sent []tea.Msg
	reload := styleReloader(path, cmd.PersistentFlags(), testutil.NewTestLogger(t), func(m tea.Msg) { sent = append(sent, m) })

	reload(fs.FileChangeEvent{Path: path, Operation: fs.FileModified})
	require.Len(t, sent, 1)
	msg, ok := sent[0].(screens.StyleReloadedMsg)
	require.True(t, ok)
	assert.Equal(t, "30ch", msg.Widths.Full())
	assert.Equal(t, "8ch", msg.Widths.Mini())
	require.NotNil(t, msg.Config)
	assert.Equal(t, path, msg.Config.Path())
	assert.Equal(t, "30ch", msg.Config.PropertyValue(config.FullNavWidthKey))

	reload(fs.FileChangeEvent{Path: path, Operation: fs.FileDeleted})
	assert.Len(t, sent, 1)
}

func TestStyleReloaderReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style: [unterminated\n"), 0o644))

	var sent []tea.Msg
	reload := styleReloader(path, nil, testutil.NewTestLogger(t), func(m tea.Msg) { sent = append(sent, m) })
	reload(fs.FileChangeEvent{Path: path, Operation: fs.FileModified})

	require.Len(t, sent, 1)
	assert.IsType(t, app.ErrorMsg{}, sent[0])
}
