package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch starts an fsnotify watcher on the config file and calls onChange
// after the file is written or replaced, until ctx is cancelled.
//
// The parent directory is watched rather than the file itself because
// most editors replace the file on save, which would otherwise drop the
// watch. Events are debounced so a save that produces several writes
// triggers a single reload.
func Watch(ctx context.Context, filename string, logger *slog.Logger, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	logger.Info("config watcher: started", slog.String("file", absPath))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("config watcher: stopped")
			return nil

		case <-reloadCh:
			logger.Debug("config watcher: reloading", slog.String("file", absPath))
			onChange()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			evPath, evErr := filepath.Abs(ev.Name)
			if evErr != nil || evPath != absPath {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
