// Package watch reports changes to a project file on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce lets editors finish a save before a change is reported.
const DefaultDebounce = 100 * time.Millisecond

// File watches path and emits its absolute path once per burst of writes.
// Editors that save by rename are handled by watching the parent directory.
// The channel is closed when ctx is done.
func File(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger) (<-chan string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to start watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	ch := make(chan string, 1)
	go func() {
		defer close(ch)
		defer w.Close()

		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs || !evt.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				logger.Debug("file event", "path", evt.Name, "op", evt.Op.String())
				fire = time.After(debounce)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", "error", err)
			case <-fire:
				fire = nil
				select {
				case ch <- abs:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}
