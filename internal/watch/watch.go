// Package watch emits debounced change notifications for a single
// file, backing the viewer's follow mode. The parent directory is
// watched rather than the file itself so editors that replace the
// file on save (rename + create) keep triggering.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce batches rapid successive writes into one notification.
const defaultDebounce = 250 * time.Millisecond

// Watcher delivers a signal on Changes after every settled change to
// one file. Notifications are conflated: a slow consumer sees at most
// one pending signal.
type Watcher struct {
	Changes <-chan struct{}

	fw      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	stopped chan struct{}
}

// New starts watching path. debounce <= 0 uses the default.
func New(path string, debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		fw:      fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	w.Changes = w.changes

	go w.run(abs, debounce, log)
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	<-w.stopped
	return w.fw.Close()
}

func (w *Watcher) run(path string, debounce time.Duration, log *slog.Logger) {
	defer close(w.stopped)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			log.Debug("file event", "op", ev.Op.String(), "path", ev.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", "err", err)

		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default: // consumer already has one pending
			}
		}
	}
}
