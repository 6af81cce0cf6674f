package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/daybook/pkg/note"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventDayChanged indicates the notes of a single day changed.
	EventDayChanged EventType = iota

	// EventInvalidated signals a change that could not be attributed to a day;
	// callers should refresh everything they display.
	EventInvalidated
)

func (t EventType) String() string {
	if t == EventDayChanged {
		return "day-changed"
	}
	return "invalidated"
}

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Day  note.Day
}

func invalidateAll(string) Event {
	return Event{Type: EventInvalidated}
}

// watchTree streams change events for base until ctx is cancelled. Callers
// should drain the returned channel; it is closed once ctx is done or the
// watcher fails.
func watchTree(ctx context.Context, base string, classify func(path string) Event) (<-chan Event, error) {
	if base == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				slog.Warn("store: watcher close", "err", err)
			}
		})
	}

	dirs, err := collectDirs(base)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer lags; the next refresh catches up.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("store: watcher error", "err", err)
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								slog.Warn("store: watch directory", "dir", absDir, "err", err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
					}
				}

				throttle.Enqueue(classify(evt.Name), send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// eventThrottle coalesces rapid change notifications so the UI refetches once
// per burst of filesystem activity.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[Event]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[Event]struct{})
	t.timer = nil
	t.mu.Unlock()

	if _, ok := pending[Event{Type: EventInvalidated}]; ok {
		send(Event{Type: EventInvalidated})
		return
	}
	for ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
