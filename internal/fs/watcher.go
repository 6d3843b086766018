package fs

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher следит за изменениями отдельных файлов. Наблюдение ведется за
// родительской директорией, чтобы переживать сохранение через rename.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	callbacks map[string][]FileChangeCallback
	dirs      map[string]int
	logger    *slog.Logger
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
}

// FileChangeCallback функция обратного вызова для изменений файлов
type FileChangeCallback func(event FileChangeEvent)

// FileChangeEvent событие изменения файла
type FileChangeEvent struct {
	Path      string        // Путь к файлу
	Operation FileOperation // Тип операции
}

// FileOperation тип операции с файлом
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
	FileRenamed
)

// NewFileWatcher создает новый наблюдатель за файлами
func NewFileWatcher(ctx context.Context, logger *slog.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(ctx)

	fw := &FileWatcher{
		watcher:   watcher,
		callbacks: make(map[string][]FileChangeCallback),
		dirs:      make(map[string]int),
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	go fw.watchLoop()

	return fw, nil
}

// WatchFile начинает наблюдение за файлом и регистрирует обработчик
func (fw *FileWatcher) WatchFile(path string, callback FileChangeCallback) error {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.dirs[dir] == 0 {
		if err := fw.watcher.Add(dir); err != nil {
			return err
		}
	}
	fw.dirs[dir]++
	fw.callbacks[path] = append(fw.callbacks[path], callback)
	return nil
}

// UnwatchFile удаляет все обработчики файла
func (fw *FileWatcher) UnwatchFile(path string) error {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	n := len(fw.callbacks[path])
	if n == 0 {
		return nil
	}
	delete(fw.callbacks, path)
	fw.dirs[dir] -= n
	if fw.dirs[dir] <= 0 {
		delete(fw.dirs, dir)
		return fw.watcher.Remove(dir)
	}
	return nil
}

// Close закрывает наблюдатель и дожидается завершения цикла
func (fw *FileWatcher) Close() error {
	fw.cancel()
	err := fw.watcher.Close()
	<-fw.done
	return err
}

// watchLoop главный цикл наблюдения
func (fw *FileWatcher) watchLoop() {
	defer close(fw.done)
	for {
		select {
		case <-fw.ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher error", "error", err)
		}
	}
}

// handleEvent вызывает обработчики, зарегистрированные для файла события
func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}
	changeEvent := convertEvent(event)

	fw.mu.RLock()
	callbacks := fw.callbacks[filepath.Clean(event.Name)]
	fw.mu.RUnlock()

	for _, callback := range callbacks {
		callback(changeEvent)
	}
}

// convertEvent конвертирует fsnotify.Event в FileChangeEvent
func convertEvent(event fsnotify.Event) FileChangeEvent {
	var operation FileOperation

	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		operation = FileCreated
	case event.Op&fsnotify.Write == fsnotify.Write:
		operation = FileModified
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		operation = FileDeleted
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		operation = FileRenamed
	default:
		operation = FileModified
	}

	return FileChangeEvent{
		Path:      filepath.Clean(event.Name),
		Operation: operation,
	}
}

// String возвращает строковое представление операции
func (op FileOperation) String() string {
	switch op {
	case FileCreated:
		return "created"
	case FileModified:
		return "modified"
	case FileDeleted:
		return "deleted"
	case FileRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}
