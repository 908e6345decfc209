package dev

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Change is a detected file modification, creation, or deletion.
type Change struct {
	Path string

	// CSS marks stylesheet changes, which browsers can apply without a
	// full page reload.
	CSS bool
}

// WatchConfig configures the polling file watcher.
type WatchConfig struct {
	// Paths are the directories to scan.
	Paths []string

	// Ignore patterns (globs matched against the base name) to skip.
	Ignore []string

	// Interval is the polling and debounce period.
	Interval time.Duration
}

// DefaultIgnore lists patterns skipped by default.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"*_test.go",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls directories for changed files and reports them through a
// callback. Polling keeps the watcher portable; no platform notification
// APIs are involved.
type Watcher struct {
	config   WatchConfig
	onChange func(Change)

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	seen    map[string]time.Time
}

// NewWatcher creates a watcher for the given configuration.
func NewWatcher(config WatchConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 200 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	return &Watcher{
		config: config,
		seen:   make(map[string]time.Time),
	}
}

// OnChange sets the callback invoked for each detected change.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until the context is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	// Baseline scan so pre-existing files do not fire as changes.
	w.scan(nil)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.poll()
		}
	}
}

// Stop halts the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

func (w *Watcher) poll() {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()
	if callback == nil {
		return
	}

	var changes []Change
	w.scan(func(c Change) { changes = append(changes, c) })

	// One notification per kind per poll; a burst of edits reloads once.
	var reloaded, refreshed bool
	for _, c := range changes {
		if c.CSS && !refreshed {
			refreshed = true
			callback(c)
		}
		if !c.CSS && !reloaded {
			reloaded = true
			callback(c)
		}
	}
}

// scan walks the watched paths, updates the modification-time snapshot, and
// reports differences through report (which may be nil for the baseline run).
func (w *Watcher) scan(report func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	visited := make(map[string]bool)

	for _, root := range w.config.Paths {
		filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if w.ignored(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if w.ignored(p) {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return nil
			}

			visited[p] = true
			prev, known := w.seen[p]
			if !known || info.ModTime().After(prev) {
				w.seen[p] = info.ModTime()
				if known && report != nil {
					report(Change{Path: p, CSS: isCSS(p)})
				}
			}
			return nil
		})
	}

	for p := range w.seen {
		if visited[p] {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			delete(w.seen, p)
			if report != nil {
				report(Change{Path: p, CSS: isCSS(p)})
			}
		}
	}
}

func (w *Watcher) ignored(p string) bool {
	base := filepath.Base(p)
	for _, pattern := range w.config.Ignore {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
		if !strings.ContainsAny(pattern, "*?[") && base == pattern {
			return true
		}
	}
	return false
}

func isCSS(p string) bool {
	return strings.EqualFold(filepath.Ext(p), ".css")
}
