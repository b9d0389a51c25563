package nav

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses bursts of filesystem events (editors writing
// temp files, git checkouts) into one refresh.
const DefaultDebounce = 300 * time.Millisecond

// Watch blocks until ctx is done, calling onChange after directory entries
// under any of dirs (or their immediate subdirectories) are created,
// removed, renamed or written. Missing dirs are skipped.
func Watch(ctx context.Context, logger Logger, debounce time.Duration, onChange func(), dirs ...string) error {
	if logger == nil {
		logger = nopLogger{}
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, dir := range dirs {
		addShallow(w, logger, dir)
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Write) {
				continue
			}
			logger.Debugf("watch: %s %s", ev.Op, ev.Name)
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						logger.Warnf("watch: add %s: %v", ev.Name, err)
					}
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			pending = timer.C
		case <-pending:
			pending = nil
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watch: %v", err)
		}
	}
}

func addShallow(w *fsnotify.Watcher, logger Logger, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warnf("watch: %s not watched: %v", dir, err)
		return
	}
	if err := w.Add(dir); err != nil {
		logger.Warnf("watch: add %s: %v", dir, err)
		return
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub := filepath.Join(dir, e.Name())
		if err := w.Add(sub); err != nil {
			logger.Warnf("watch: add %s: %v", sub, err)
		}
	}
}
