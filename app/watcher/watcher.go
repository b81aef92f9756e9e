// Package watcher re-runs the sync pipeline when drafts change on disk.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 500 * time.Millisecond

// Watcher monitors the content factory buckets for draft changes and
// invokes a callback once the filesystem settles. Rapid save bursts from
// editors are debounced into a single callback.
type Watcher struct {
	contentDir string
	watcher    *fsnotify.Watcher

	mu    sync.Mutex
	dirty time.Time
}

func New(contentDir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		contentDir: contentDir,
		watcher:    fsWatcher,
	}, nil
}

// Run watches the content root and its bucket subdirectories and calls
// onChange after each debounced batch of .md events. Blocks until the
// context is cancelled.
func (w *Watcher) Run(ctx context.Context, buckets []string, onChange func()) error {
	defer w.watcher.Close()

	if err := w.watcher.Add(w.contentDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.contentDir, err)
	}

	for _, bucket := range buckets {
		dir := filepath.Join(w.contentDir, bucket)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			slog.Warn("Bucket missing, not watching", "dir", dir)
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			slog.Warn("Failed to watch bucket", "dir", dir, "error", err)
			continue
		}
		slog.Debug("Watching bucket", "dir", dir)
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", "error", err)

		case <-ticker.C:
			if w.consumeDirty() {
				onChange()
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".md") {
		return
	}

	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	slog.Debug("Draft changed", "path", event.Name, "op", event.Op.String())

	w.mu.Lock()
	w.dirty = time.Now()
	w.mu.Unlock()
}

// consumeDirty reports whether a change batch is ready, clearing the mark.
func (w *Watcher) consumeDirty() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dirty.IsZero() || time.Since(w.dirty) < debounceInterval {
		return false
	}

	w.dirty = time.Time{}
	return true
}
