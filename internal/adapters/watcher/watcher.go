// Package watcher implements file watching for the host binary.
package watcher

import (
	"context"
	"errors"
	"iter"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements ports.Watcher using fsnotify.
// The parent directory of the target is watched so that a binary replaced by
// rename or remove-and-create is still observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	target    string
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file watcher. logger may be nil.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Join(domain.ErrWatcherFailed, err)
	}
	return &Watcher{
		fsWatcher: w,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching path.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrWatcherFailed, err), "path", path)
	}
	w.target = abs

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(errors.Join(domain.ErrWatcherFailed, err), "path", path)
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of events for the watched file.
// The iterator ends when the watcher stops or its context is done.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("watcher: " + err.Error())
			}
		}
	}
}

// convertEvent maps an fsnotify event on the target to a ports.WatchEvent.
// Events on sibling files and chmod-only events are dropped.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	if filepath.Clean(event.Name) != w.target {
		return ports.WatchEvent{}, false
	}

	switch {
	case event.Has(fsnotify.Write):
		return ports.WatchEvent{Path: w.target, Operation: ports.OpWrite}, true
	case event.Has(fsnotify.Create):
		return ports.WatchEvent{Path: w.target, Operation: ports.OpCreate}, true
	case event.Has(fsnotify.Remove):
		return ports.WatchEvent{Path: w.target, Operation: ports.OpRemove}, true
	case event.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: w.target, Operation: ports.OpRename}, true
	default:
		return ports.WatchEvent{}, false
	}
}
