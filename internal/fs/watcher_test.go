package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFileReportsWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(target, []byte("a"), 0o644))

	fw, err := NewFileWatcher(context.Background(), nil)
	require.NoError(t, err)
	defer fw.Close()

	events := make(chan FileChangeEvent, 16)
	require.NoError(t, fw.WatchFile(target, func(ev FileChangeEvent) {
		events <- ev
	}))

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("b"), 0o644))

	select {
	case ev := <-events:
		assert.Equal(t, filepath.Clean(target), ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the watched file")
	}
}

func TestUnwatchFileStopsCallbacks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.yaml")

	fw, err := NewFileWatcher(context.Background(), nil)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.WatchFile(target, func(FileChangeEvent) {}))
	require.NoError(t, fw.UnwatchFile(target))
	assert.Empty(t, fw.callbacks)
	assert.Empty(t, fw.dirs)

	// Unwatching twice is a no-op.
	assert.NoError(t, fw.UnwatchFile(target))
}

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		op   fsnotify.Op
		want FileOperation
	}{
		{fsnotify.Create, FileCreated},
		{fsnotify.Write, FileModified},
		{fsnotify.Remove, FileDeleted},
		{fsnotify.Rename, FileRenamed},
		{fsnotify.Create | fsnotify.Write, FileCreated},
	}
	for _, tt := range tests {
		got := convertEvent(fsnotify.Event{Name: "/tmp/x/../y.yaml", Op: tt.op})
		assert.Equal(t, tt.want, got.Operation, tt.op.String())
		assert.Equal(t, "/tmp/y.yaml", got.Path)
	}
}

func TestFileOperationString(t *testing.T) {
	assert.Equal(t, "created", FileCreated.String())
	assert.Equal(t, "modified", FileModified.String())
	assert.Equal(t, "deleted", FileDeleted.String())
	assert.Equal(t, "renamed", FileRenamed.String())
	assert.Equal(t, "unknown", FileOperation(42).String())
}
