package region

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultReloadDelay coalesces the burst of events editors emit on save.
const DefaultReloadDelay = 100 * time.Millisecond

// Watcher reloads a content file when it changes on disk. Reloaded tables
// are handed to the frame loop through Updates; a file that fails to parse
// is logged and the previous table stays active.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *Table
	delay   time.Duration
	log     *zap.Logger

	closeOnce sync.Once
}

// NewWatcher watches the directory containing path so that editors which
// replace the file by rename are still seen.
func NewWatcher(path string, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		watcher: fw,
		updates: make(chan *Table, 1),
		delay:   DefaultReloadDelay,
		log:     log,
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// Updates delivers reloaded tables. Only the newest unread table is kept.
func (w *Watcher) Updates() <-chan *Table {
	return w.updates
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isContentEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("content watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) isContentEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) reload() {
	t, err := Load(w.path)
	if err != nil {
		w.log.Warn("content reload failed, keeping previous table", zap.String("path", w.path), zap.Error(err))
		return
	}
	// Run is the only sender, so after draining the send cannot block.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- t
	w.log.Info("content reloaded", zap.String("path", w.path), zap.Int("regions", len(t.IDs())))
}

// Close stops the underlying watcher; Run returns afterwards.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}
