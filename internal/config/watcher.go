package config

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/procpane/procpane/internal/logging"
)

var watcherLog = logging.ForComponent(logging.CompConfig)

// Watcher follows the config file with fsnotify and delivers freshly loaded
// configs on its channel. Editors tend to fire several events per save
// (write, chmod, rename), so reloads are coalesced through a rate limiter
// rather than reloading once per event.
type Watcher struct {
	path      string
	fsw       *fsnotify.Watcher
	limiter   *rate.Limiter
	reloadCh  chan *Config
	closeCh   chan struct{}
	closeOnce sync.Once
}

// reloadsPerSecond caps how often a burst of file events turns into an
// actual reload.
const reloadsPerSecond = 2

// NewWatcher starts watching the config file's directory (watching the file
// itself breaks on editors that replace it). Returns nil and no error when
// the directory doesn't exist yet; the caller falls back to a static config.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		watcherLog.Debug("config_watch_unavailable", slog.String("error", err.Error()))
		return nil, nil
	}

	w := &Watcher{
		path:     path,
		fsw:      fsw,
		limiter:  rate.NewLimiter(rate.Limit(reloadsPerSecond), 1),
		reloadCh: make(chan *Config, 1),
		closeCh:  make(chan struct{}),
	}
	go w.watchLoop()
	return w, nil
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.closeCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if ok && err != nil {
				watcherLog.Warn("config_watch_error", slog.String("error", err.Error()))
			}
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// Keep running on the previous config; a half-saved file is
		// the usual cause.
		watcherLog.Warn("config_reload_failed", slog.String("error", err.Error()))
		return
	}
	watcherLog.Info("config_reloaded", slog.String("path", w.path))

	// Non-blocking send (drop if consumer hasn't read yet)
	select {
	case w.reloadCh <- cfg:
	default:
	}
}

// ReloadChannel returns the channel that receives reloaded configs.
func (w *Watcher) ReloadChannel() <-chan *Config {
	return w.reloadCh
}

// Close stops the watcher goroutine. Safe to call multiple times.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
	})
	return err
}
