// Package watch reports debounced changes to a single file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/stylebox/internal/logger"
)

// DefaultDelay is how long a file must stay quiet before a change is reported.
const DefaultDelay = 100 * time.Millisecond

// Event reports that the watched file changed.
type Event struct {
	Path string
	Op   fsnotify.Op
	At   time.Time
}

type options struct {
	delay time.Duration
	log   *logger.Logger
}

// Option configures Watch.
type Option func(*options)

// WithDelay sets the debounce delay.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.delay = d
		}
	}
}

// WithLogger sets the logger used for watcher errors.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Watch emits an Event each time path is written, created or replaced,
// coalescing bursts within the debounce delay. The parent directory is
// watched so editors that save by renaming are still seen. The channel is
// closed once ctx is done.
func Watch(ctx context.Context, path string, opts ...Option) (<-chan Event, error) {
	cfg := options{delay: DefaultDelay}
	for _, opt := range opts {
		opt(&cfg)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	events := make(chan Event, 1)

	go func() {
		var (
			mu     sync.Mutex
			timer  *time.Timer
			closed bool
		)

		defer func() {
			mu.Lock()
			closed = true
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			_ = watcher.Close()
			close(events)
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}

				op := event.Op
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(cfg.delay, func() {
					mu.Lock()
					defer mu.Unlock()

					if closed {
						return
					}

					select {
					case events <- Event{Path: abs, Op: op, At: time.Now()}:
					default:
					}
				})
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				cfg.log.WarnFields("file watcher error", map[string]any{"path": abs, "error": err.Error()})
			}
		}
	}()

	return events, nil
}
