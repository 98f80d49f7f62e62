package viewer

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces bursts of file events into one reload.
const DefaultDebounce = 200 * time.Millisecond

// DatasetWatcher emits a notification whenever a local dataset file changes.
//
// The parent directory is watched so that files replaced by rename are still
// seen.
type DatasetWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	changes  chan struct{}
	debounce time.Duration
	log      *zap.Logger
}

// WatchDataset starts watching path. Call Close when done.
func WatchDataset(ctx context.Context, path string, log *zap.Logger) (*DatasetWatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	dw := &DatasetWatcher{
		path:     abs,
		watcher:  w,
		changes:  make(chan struct{}, 1),
		debounce: DefaultDebounce,
		log:      log,
	}
	go dw.loop(ctx)
	return dw, nil
}

// Changes delivers one value per debounced batch of changes. It is closed
// when the watcher stops.
func (w *DatasetWatcher) Changes() <-chan struct{} { return w.changes }

// Close stops watching.
func (w *DatasetWatcher) Close() error { return w.watcher.Close() }

func (w *DatasetWatcher) loop(ctx context.Context) {
	defer close(w.changes)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Debug("dataset watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}
