package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ChangeWatcher = (*Watcher)(nil)

// ErrWatcherClosed is returned when Watch is called after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// Watcher reports content file changes using fsnotify.
// fsnotify is not recursive, so every directory below a source root is
// added explicitly, including directories created after Watch starts.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	sources []domain.SourceConfig
	closed  bool
}

// NewWatcher creates a watcher. Nothing is watched until Watch is called.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Watch starts watching every directory under the source roots.
// Sources whose root is missing are skipped with a warning.
func (w *Watcher) Watch(ctx context.Context, sources []domain.SourceConfig) (<-chan domain.ChangeEvent, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, ErrWatcherClosed
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.watcher = fsw
	w.sources = sources
	w.mu.Unlock()

	for _, src := range sources {
		if err := w.addTree(src.Root); err != nil {
			logger.Warn("not watching %s source %s: %v", src.Type, src.Root, err)
		}
	}

	changes := make(chan domain.ChangeEvent)

	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				change := w.handleFsEvent(event)
				if change == nil {
					continue
				}
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)
			}
		}
	}()

	return changes, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

// addTree watches root and every non-hidden directory below it.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && isHidden(filepath.Base(path)) {
			return fs.SkipDir
		}
		return w.add(path)
	})
}

func (w *Watcher) add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil || w.closed {
		return ErrWatcherClosed
	}
	return w.watcher.Add(path)
}

// handleFsEvent converts an fsnotify event into a change event.
// Returns nil for events that should not trigger a rebuild.
func (w *Watcher) handleFsEvent(event fsnotify.Event) *domain.ChangeEvent {
	src, ok := w.sourceFor(event.Name)
	if !ok {
		return nil
	}
	rel, err := filepath.Rel(src.Root, event.Name)
	if err != nil || isHidden(rel) {
		return nil
	}

	change := &domain.ChangeEvent{
		SourceType: src.Type,
		Path:       event.Name,
		At:         time.Now(),
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		// The path is gone, so a removed directory cannot be told apart from a file.
		// Both may have held content.
		if !src.AcceptsExtension(filepath.Ext(event.Name)) && filepath.Ext(event.Name) != "" {
			return nil
		}
		change.Type = domain.ChangeDeleted
		return change

	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if event.Has(fsnotify.Create) {
				if err := w.addTree(event.Name); err != nil {
					logger.Warn("not watching %s: %v", event.Name, err)
				}
			}
			return nil
		}
		if !src.AcceptsExtension(filepath.Ext(event.Name)) {
			return nil
		}
		if event.Has(fsnotify.Create) {
			change.Type = domain.ChangeCreated
		} else {
			change.Type = domain.ChangeUpdated
		}
		return change

	default:
		return nil
	}
}

// sourceFor returns the source whose root contains path.
func (w *Watcher) sourceFor(path string) (domain.SourceConfig, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, src := range w.sources {
		root := filepath.Clean(src.Root)
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return src, true
		}
	}
	return domain.SourceConfig{}, false
}
