package config

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jask/clockboard/internal/logx"
)

// watchDebounce absorbs the write bursts editors produce when saving.
const watchDebounce = 250 * time.Millisecond

// Watch blocks watching path's directory and calls deliver with each
// successfully reloaded, changed config. Parse failures and no-op
// writes are logged and skipped; the previous config stays in effect.
// Returns when ctx is cancelled or the watcher cannot be created.
func Watch(ctx context.Context, path string, initial Config, log logx.Logger, deliver func(Config)) error {
	if path == "" {
		path = DefaultPath()
	}
	dir := filepath.Dir(path)
	file := filepath.Base(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Debug("config watcher started", logx.String("dir", dir), logx.String("file", file))

	// last is the config currently in effect; editors fire several
	// events per save, and touch without content change is common.
	var (
		mu    sync.Mutex
		last  = initial
		timer *time.Timer
	)
	reload := func() {
		cfg, err := Load(path)
		if err != nil {
			log.Warn("config reload failed", logx.String("path", path), logx.Err(err))
			return
		}
		mu.Lock()
		changed := cfg != last
		if changed {
			last = cfg
		}
		mu.Unlock()
		if !changed {
			log.Debug("config unchanged; skipping reload", logx.String("path", path))
			return
		}
		log.Info("config reloaded", logx.String("path", path))
		deliver(cfg)
	}
	debounce := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, reload)
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Base(ev.Name), file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove|fsnotify.Chmod) != 0 {
				debounce()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				log.Warn("config watch error", logx.Err(err), logx.String("dir", dir))
			}
		}
	}
}
